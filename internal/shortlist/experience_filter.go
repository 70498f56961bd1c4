package shortlist

import (
	"strconv"

	"github.com/spigell/shortlister/internal/candidate"
)

type experienceFilter struct {
	toggle
}

// NewExperience creates a filter that keeps candidates with at least the minimum years.
func NewExperience() Filter {
	return &experienceFilter{toggle: enabled()}
}

func (f *experienceFilter) Name() string { return "experience" }

func (f *experienceFilter) Match(c candidate.Candidate, k candidate.Criteria) bool {
	return c.ExperienceYears >= k.MinExperienceYears
}

func (f *experienceFilter) Status(k candidate.Criteria) Status {
	return f.status(f.Name(), map[string]string{
		"min_experience_years": strconv.Itoa(k.MinExperienceYears),
	})
}
