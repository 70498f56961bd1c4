package shortlist

import (
	"go.uber.org/zap"

	"github.com/spigell/shortlister/internal/candidate"
	"github.com/spigell/shortlister/internal/logger"
)

// Shortlist returns the candidates satisfying every built-in filter, in input order.
// It never modifies its arguments and never returns nil.
func Shortlist(candidates []candidate.Candidate, k candidate.Criteria) []candidate.Candidate {
	steps := Default()
	result := make([]candidate.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if matchAll(steps, c, k) {
			result = append(result, c.Clone())
		}
	}

	return result
}

func matchAll(steps []Filter, c candidate.Candidate, k candidate.Criteria) bool {
	for _, step := range steps {
		if step.IsEnabled() && !step.Match(c, k) {
			return false
		}
	}
	return true
}

// Matcher runs a fixed set of filters and logs every step.
type Matcher struct {
	steps  []Filter
	logger *zap.Logger
}

// New creates a matcher. Without explicit steps the built-in filters are used.
func New(log *zap.Logger, steps ...Filter) *Matcher {
	if len(steps) == 0 {
		steps = Default()
	}

	return &Matcher{
		steps:  steps,
		logger: logger.WithFields(log),
	}
}

// Shortlist filters the candidates and reports how each step narrowed them down.
func (m *Matcher) Shortlist(candidates []candidate.Candidate, k candidate.Criteria) ([]candidate.Candidate, []Step) {
	m.logger.Debug("shortlisting", logger.CriteriaFields(k)...)

	result, steps := Run(m.logger, m.steps, k, candidates)

	m.logger.Info("shortlist computed",
		zap.Int("candidates", len(candidates)),
		zap.Int("shortlisted", len(result)),
	)

	return result, steps
}

func (m *Matcher) DisableByName(name, reason string) {
	DisableByName(m.steps, name, reason)
}

func (m *Matcher) Describe(k candidate.Criteria) []Status {
	return Describe(m.steps, k)
}
