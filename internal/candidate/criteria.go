package candidate

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// CriteriaField names a single editable criteria field.
type CriteriaField string

const (
	FieldKeywords          CriteriaField = "keywords"
	FieldMinExperience     CriteriaField = "experienceYears"
	FieldRequiredSkills    CriteriaField = "skills"
	FieldRequiredEducation CriteriaField = "education"
)

// CriteriaFields lists editable fields in form order.
func CriteriaFields() []CriteriaField {
	return []CriteriaField{FieldKeywords, FieldMinExperience, FieldRequiredSkills, FieldRequiredEducation}
}

// Criteria is what candidates are shortlisted against.
// Keywords are stored but not consulted when matching.
type Criteria struct {
	Keywords           []string `json:"keywords" yaml:"keywords"`
	RequiredSkills     []string `json:"required_skills" yaml:"required_skills"`
	MinExperienceYears int      `json:"min_experience_years" yaml:"min_experience_years"`
	RequiredEducation  string   `json:"required_education" yaml:"required_education"`
}

// CriteriaInput holds raw criteria form values.
type CriteriaInput struct {
	Keywords        string `mapstructure:"keywords"`
	Skills          string `mapstructure:"skills"`
	ExperienceYears string `mapstructure:"experience-years"`
	Education       string `mapstructure:"education"`
}

func DefaultCriteria() Criteria {
	return Criteria{
		Keywords:       []string{},
		RequiredSkills: []string{},
	}
}

// NewCriteria builds criteria from raw form values. The criteria are always
// usable; the error joins every normalization that happened.
func NewCriteria(in CriteriaInput) (Criteria, error) {
	values := map[CriteriaField]string{
		FieldKeywords:          in.Keywords,
		FieldMinExperience:     in.ExperienceYears,
		FieldRequiredSkills:    in.Skills,
		FieldRequiredEducation: in.Education,
	}

	criteria := DefaultCriteria()
	var errs []error
	for _, field := range CriteriaFields() {
		next, err := criteria.With(field, values[field])
		if err != nil {
			errs = append(errs, err)
		}
		criteria = next
	}

	return criteria, errors.Join(errs...)
}

// With returns a copy of c with one field replaced by the parsed raw value.
func (c Criteria) With(field CriteriaField, raw string) (Criteria, error) {
	next := c.Clone()

	switch field {
	case FieldKeywords:
		next.Keywords = uniq(SplitList(raw))
	case FieldRequiredSkills:
		next.RequiredSkills = uniq(SplitList(raw))
	case FieldRequiredEducation:
		next.RequiredEducation = raw
	case FieldMinExperience:
		years, err := ParseYears(string(field), raw)
		next.MinExperienceYears = years
		return next, err
	default:
		return next, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return next, nil
}

// Value renders a single field back into its form representation.
func (c Criteria) Value(field CriteriaField) string {
	switch field {
	case FieldKeywords:
		return JoinList(c.Keywords)
	case FieldRequiredSkills:
		return JoinList(c.RequiredSkills)
	case FieldRequiredEducation:
		return c.RequiredEducation
	case FieldMinExperience:
		return strconv.Itoa(c.MinExperienceYears)
	default:
		return ""
	}
}

func (c Criteria) Clone() Criteria {
	c.Keywords = cloneList(c.Keywords)
	c.RequiredSkills = cloneList(c.RequiredSkills)
	return c
}

func cloneList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}
