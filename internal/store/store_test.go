package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/spigell/shortlister/internal/candidate"
)

func TestNewStoreIsEmpty(t *testing.T) {
	s := New()

	if s.Len() != 0 {
		t.Fatalf("expected no candidates, got %d", s.Len())
	}

	if diff := cmp.Diff(candidate.DefaultCriteria(), s.Criteria()); diff != "" {
		t.Fatalf("unexpected criteria (-want +got):\n%s", diff)
	}
}

func TestAddCandidateKeepsOrder(t *testing.T) {
	s := New()

	names := []string{"Alice", "Bob", "Carol"}
	for _, name := range names {
		if _, err := s.AddCandidate(candidate.Input{Name: name, Skills: "go"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := make([]string, 0, s.Len())
	ids := make(map[string]struct{})
	for _, c := range s.Candidates() {
		got = append(got, c.Name)
		ids[c.ID] = struct{}{}
	}

	if diff := cmp.Diff(names, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if len(ids) != len(names) {
		t.Fatalf("expected %d unique ids, got %d", len(names), len(ids))
	}
}

func TestAddCandidateStoresNormalizedValue(t *testing.T) {
	s := New()

	c, err := s.AddCandidate(candidate.Input{Name: "Bob", Experience: "abc"})
	if !errors.Is(err, candidate.ErrInvalidField) {
		t.Fatalf("expected invalid field error, got %v", err)
	}

	stored := s.FindByID(c.ID)
	if stored == nil {
		t.Fatalf("expected candidate to be stored")
	}
	if stored.ExperienceYears != 0 {
		t.Fatalf("expected zero experience, got %d", stored.ExperienceYears)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := New()
	added, _ := s.AddCandidate(candidate.Input{Name: "Alice", Skills: "go"})
	added.Skills[0] = "java"

	snapshot := s.Candidates()
	snapshot[0].Skills[0] = "rust"
	snapshot[0].Name = "Mallory"

	current := s.Candidates()[0]
	if current.Name != "Alice" || current.Skills[0] != "go" {
		t.Fatalf("store was mutated through a snapshot: %+v", current)
	}

	s.ReplaceCriteria(candidate.Criteria{RequiredSkills: []string{"go"}})
	criteria := s.Criteria()
	criteria.RequiredSkills[0] = "java"
	if s.Criteria().RequiredSkills[0] != "go" {
		t.Fatalf("store criteria were mutated through a snapshot")
	}
}

func TestUpdateCriteria(t *testing.T) {
	s := New()

	if _, err := s.UpdateCriteria(candidate.FieldRequiredSkills, "go,sql"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.UpdateCriteria(candidate.FieldMinExperience, "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.UpdateCriteria(candidate.FieldRequiredEducation, "BSc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := candidate.Criteria{Keywords: []string{}, RequiredSkills: []string{"go", "sql"}, MinExperienceYears: 3, RequiredEducation: "BSc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected criteria (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, s.Criteria()); diff != "" {
		t.Fatalf("unexpected stored criteria (-want +got):\n%s", diff)
	}

	if _, err := s.UpdateCriteria("salary", "1"); !errors.Is(err, candidate.ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if diff := cmp.Diff(want, s.Criteria()); diff != "" {
		t.Fatalf("unknown field changed criteria (-want +got):\n%s", diff)
	}
}

func TestClearMatchesFreshStore(t *testing.T) {
	used := New()
	used.AddCandidate(candidate.Input{Name: "Alice", Skills: "go", Experience: "5", Education: "BSc"})
	used.ReplaceCriteria(candidate.Criteria{RequiredSkills: []string{"go"}, MinExperienceYears: 2})

	used.Clear()
	used.Clear()

	fresh := New()
	if diff := cmp.Diff(fresh.Criteria(), used.Criteria()); diff != "" {
		t.Fatalf("criteria leaked after clear (-want +got):\n%s", diff)
	}
	if used.Len() != 0 {
		t.Fatalf("candidates leaked after clear: %d", used.Len())
	}

	in := candidate.Input{Name: "Bob", Skills: "java", Experience: "1", Education: "MSc"}
	a, _ := used.AddCandidate(in)
	b, _ := fresh.AddCandidate(in)

	ignoreID := cmpopts.IgnoreFields(candidate.Candidate{}, "ID")
	if diff := cmp.Diff(fresh.Candidates(), used.Candidates(), ignoreID); diff != "" {
		t.Fatalf("cleared store differs from fresh store (-want +got):\n%s", diff)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids")
	}
}
