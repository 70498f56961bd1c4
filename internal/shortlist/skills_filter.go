package shortlist

import (
	"slices"

	"github.com/spigell/shortlister/internal/candidate"
)

type skillsFilter struct {
	toggle
}

// NewSkills creates a filter that keeps candidates sharing at least one skill
// with the required skills. Empty required skills match nobody.
func NewSkills() Filter {
	return &skillsFilter{toggle: enabled()}
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) Match(c candidate.Candidate, k candidate.Criteria) bool {
	return slices.ContainsFunc(c.Skills, func(skill string) bool {
		return slices.Contains(k.RequiredSkills, skill)
	})
}

func (f *skillsFilter) Status(k candidate.Criteria) Status {
	return f.status(f.Name(), map[string]string{
		"required_skills": candidate.JoinList(k.RequiredSkills),
	})
}
