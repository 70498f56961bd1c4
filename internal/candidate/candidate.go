package candidate

import (
	"slices"
	"strconv"

	"github.com/google/uuid"
)

const (
	FieldName       = "name"
	FieldSkills     = "skills"
	FieldExperience = "experience"
	FieldEducation  = "education"
)

// Candidate is a single person under consideration.
type Candidate struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Skills          []string `json:"skills" yaml:"skills"`
	ExperienceYears int      `json:"experience_years" yaml:"experience_years"`
	EducationLevel  string   `json:"education_level" yaml:"education_level"`
}

// Input holds the raw candidate form values as the user typed them.
type Input struct {
	Name       string `mapstructure:"name"`
	Skills     string `mapstructure:"skills"`
	Experience string `mapstructure:"experience"`
	Education  string `mapstructure:"education"`
}

// NewCandidate builds a candidate with a fresh id from raw input.
// The returned candidate is always usable. A non-nil error only reports
// values that were normalized on the way.
func NewCandidate(in Input) (Candidate, error) {
	years, err := ParseYears(FieldExperience, in.Experience)

	return Candidate{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Skills:          uniq(SplitList(in.Skills)),
		ExperienceYears: years,
		EducationLevel:  in.Education,
	}, err
}

// InputOf renders a candidate back into form values.
func InputOf(c Candidate) Input {
	return Input{
		Name:       c.Name,
		Skills:     JoinList(c.Skills),
		Experience: strconv.Itoa(c.ExperienceYears),
		Education:  c.EducationLevel,
	}
}

func (c Candidate) HasSkill(skill string) bool {
	return slices.Contains(c.Skills, skill)
}

// Clone returns a deep copy so callers can not alter the owner's skills.
func (c Candidate) Clone() Candidate {
	c.Skills = slices.Clone(c.Skills)
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return c
}

// CloneAll copies a candidate list. The result is never nil.
func CloneAll(candidates []Candidate) []Candidate {
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.Clone())
	}
	return result
}
