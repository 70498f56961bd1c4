package session

import (
	"go.uber.org/zap"

	"github.com/spigell/shortlister/internal/candidate"
	"github.com/spigell/shortlister/internal/logger"
	"github.com/spigell/shortlister/internal/shortlist"
	"github.com/spigell/shortlister/internal/store"
)

// State of the shortlisting workflow.
type State int

const (
	Idle State = iota
	Shortlisted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Shortlisted:
		return "shortlisted"
	default:
		return "unknown"
	}
}

// Session couples one store with a matcher and remembers the last shortlist.
// A session must not be shared between goroutines.
type Session struct {
	store   *store.Store
	matcher *shortlist.Matcher
	logger  *zap.Logger

	state   State
	results []candidate.Candidate
	steps   []shortlist.Step
}

func New(s *store.Store, m *shortlist.Matcher, log *zap.Logger) *Session {
	if s == nil {
		s = store.New()
	}

	log = logger.WithFields(log)
	if m == nil {
		m = shortlist.New(log)
	}

	return &Session{
		store:   s,
		matcher: m,
		logger:  log,
		results: []candidate.Candidate{},
	}
}

func (s *Session) Store() *store.Store { return s.store }

func (s *Session) Matcher() *shortlist.Matcher { return s.matcher }

func (s *Session) State() State { return s.state }

// AddCandidate stores a candidate. Normalized fields are logged and returned.
func (s *Session) AddCandidate(in candidate.Input) (candidate.Candidate, error) {
	c, err := s.store.AddCandidate(in)
	if err != nil {
		s.logger.Warn("candidate field normalized", zap.Error(err))
	}

	s.logger.Info("candidate added", logger.CandidateFields(c)...)
	return c, err
}

// UpdateCriteria applies one field edit to the stored criteria.
func (s *Session) UpdateCriteria(field candidate.CriteriaField, raw string) (candidate.Criteria, error) {
	k, err := s.store.UpdateCriteria(field, raw)
	if err != nil {
		s.logger.Warn("criteria field not applied cleanly", zap.String("field", string(field)), zap.Error(err))
	}

	s.logger.Debug("criteria updated", logger.CriteriaFields(k)...)
	return k, err
}

func (s *Session) ReplaceCriteria(k candidate.Criteria) {
	s.store.ReplaceCriteria(k)
	s.logger.Debug("criteria replaced", logger.CriteriaFields(k)...)
}

// Shortlist runs the matcher over the current store snapshot and enters Shortlisted.
func (s *Session) Shortlist() []candidate.Candidate {
	s.results, s.steps = s.matcher.Shortlist(s.store.Candidates(), s.store.Criteria())
	s.state = Shortlisted

	return candidate.CloneAll(s.results)
}

// Results returns the last computed shortlist. It is empty while Idle.
func (s *Session) Results() []candidate.Candidate {
	return candidate.CloneAll(s.results)
}

// Steps returns how the last shortlist was narrowed down.
func (s *Session) Steps() []shortlist.Step {
	return append([]shortlist.Step(nil), s.steps...)
}

// Clear empties the store, forgets the last shortlist and returns to Idle.
func (s *Session) Clear() {
	s.store.Clear()
	s.results = []candidate.Candidate{}
	s.steps = nil
	s.state = Idle

	s.logger.Info("session cleared")
}
