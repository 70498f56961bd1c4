package shortlist

import (
	"strconv"

	"github.com/spigell/shortlister/internal/candidate"
)

type educationFilter struct {
	toggle
}

// NewEducation creates a filter that keeps candidates whose education level is
// exactly the required one. No case folding, no trimming.
func NewEducation() Filter {
	return &educationFilter{toggle: enabled()}
}

func (f *educationFilter) Name() string { return "education" }

func (f *educationFilter) Match(c candidate.Candidate, k candidate.Criteria) bool {
	return c.EducationLevel == k.RequiredEducation
}

func (f *educationFilter) Status(k candidate.Criteria) Status {
	return f.status(f.Name(), map[string]string{
		"required_education": strconv.Quote(k.RequiredEducation),
	})
}
