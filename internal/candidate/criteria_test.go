package candidate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	if c.Keywords == nil || c.RequiredSkills == nil {
		t.Fatalf("expected non-nil lists: %#v", c)
	}
	if c.MinExperienceYears != 0 || c.RequiredEducation != "" {
		t.Fatalf("expected zero values, got %#v", c)
	}
}

func TestCriteriaWith(t *testing.T) {
	t.Parallel()

	base := Criteria{
		Keywords:           []string{"remote"},
		RequiredSkills:     []string{"go"},
		MinExperienceYears: 2,
		RequiredEducation:  "BSc",
	}

	tests := []struct {
		name   string
		field  CriteriaField
		raw    string
		expect Criteria
	}{
		{
			name:   "keywords",
			field:  FieldKeywords,
			raw:    "backend,backend,cloud",
			expect: Criteria{Keywords: []string{"backend", "cloud"}, RequiredSkills: []string{"go"}, MinExperienceYears: 2, RequiredEducation: "BSc"},
		},
		{
			name:   "skills",
			field:  FieldRequiredSkills,
			raw:    "go,java",
			expect: Criteria{Keywords: []string{"remote"}, RequiredSkills: []string{"go", "java"}, MinExperienceYears: 2, RequiredEducation: "BSc"},
		},
		{
			name:   "skills cleared",
			field:  FieldRequiredSkills,
			raw:    "",
			expect: Criteria{Keywords: []string{"remote"}, RequiredSkills: []string{}, MinExperienceYears: 2, RequiredEducation: "BSc"},
		},
		{
			name:   "experience",
			field:  FieldMinExperience,
			raw:    "10",
			expect: Criteria{Keywords: []string{"remote"}, RequiredSkills: []string{"go"}, MinExperienceYears: 10, RequiredEducation: "BSc"},
		},
		{
			name:   "education kept verbatim",
			field:  FieldRequiredEducation,
			raw:    " msc ",
			expect: Criteria{Keywords: []string{"remote"}, RequiredSkills: []string{"go"}, MinExperienceYears: 2, RequiredEducation: " msc "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := base.With(tt.field, tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expect, got); diff != "" {
				t.Fatalf("unexpected criteria (-want +got):\n%s", diff)
			}
			if base.RequiredSkills[0] != "go" || base.Keywords[0] != "remote" {
				t.Fatalf("base criteria were modified: %#v", base)
			}
		})
	}
}

func TestCriteriaWithInvalidExperience(t *testing.T) {
	got, err := Criteria{MinExperienceYears: 4}.With(FieldMinExperience, "NaN")
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected invalid field error, got %v", err)
	}
	if got.MinExperienceYears != 0 {
		t.Fatalf("expected threshold to be coerced to zero, got %d", got.MinExperienceYears)
	}
}

func TestCriteriaWithUnknownField(t *testing.T) {
	base := Criteria{RequiredEducation: "BSc"}
	got, err := base.With("salary", "100")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if got.RequiredEducation != "BSc" {
		t.Fatalf("expected criteria to stay unchanged, got %#v", got)
	}
}

func TestNewCriteria(t *testing.T) {
	got, err := NewCriteria(CriteriaInput{Keywords: "k", Skills: "go,sql", ExperienceYears: "3", Education: "BSc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Criteria{Keywords: []string{"k"}, RequiredSkills: []string{"go", "sql"}, MinExperienceYears: 3, RequiredEducation: "BSc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected criteria (-want +got):\n%s", diff)
	}

	for _, field := range CriteriaFields() {
		if got.Value(field) == "" {
			t.Fatalf("expected %s to render a value", field)
		}
	}

	_, err = NewCriteria(CriteriaInput{ExperienceYears: "x"})
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected invalid field error, got %v", err)
	}
}
