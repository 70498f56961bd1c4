package store

import (
	"github.com/spigell/shortlister/internal/candidate"
)

// Store owns the working candidate list and the current criteria of one session.
// It is not safe for concurrent use.
type Store struct {
	candidates []candidate.Candidate
	criteria   candidate.Criteria
}

func New() *Store {
	s := &Store{}
	s.Clear()
	return s
}

// AddCandidate builds a candidate from raw input and appends it.
// The candidate is stored even when the error reports a normalized field.
func (s *Store) AddCandidate(in candidate.Input) (candidate.Candidate, error) {
	c, err := candidate.NewCandidate(in)
	s.candidates = append(s.candidates, c)

	return c.Clone(), err
}

// ReplaceCriteria stores c wholesale.
func (s *Store) ReplaceCriteria(c candidate.Criteria) {
	s.criteria = c.Clone()
}

// UpdateCriteria applies a single field edit to the current criteria and stores the result.
// Unknown fields leave the criteria untouched.
func (s *Store) UpdateCriteria(field candidate.CriteriaField, raw string) (candidate.Criteria, error) {
	next, err := s.criteria.With(field, raw)
	s.criteria = next

	return next.Clone(), err
}

// Clear resets the store to its initial state.
func (s *Store) Clear() {
	s.candidates = []candidate.Candidate{}
	s.criteria = candidate.DefaultCriteria()
}

// Candidates returns a snapshot of the candidates in insertion order.
func (s *Store) Candidates() []candidate.Candidate {
	return candidate.CloneAll(s.candidates)
}

// Criteria returns a snapshot of the current criteria.
func (s *Store) Criteria() candidate.Criteria {
	return s.criteria.Clone()
}

func (s *Store) Len() int {
	return len(s.candidates)
}

func (s *Store) FindByID(id string) *candidate.Candidate {
	for _, c := range s.candidates {
		if c.ID == id {
			found := c.Clone()
			return &found
		}
	}

	return nil
}
