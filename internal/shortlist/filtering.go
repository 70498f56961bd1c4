package shortlist

import (
	"go.uber.org/zap"

	"github.com/spigell/shortlister/internal/candidate"
	"github.com/spigell/shortlister/internal/logger"
)

// Filter is a single predicate pairing a candidate field with a criteria field.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Match(c candidate.Candidate, k candidate.Criteria) bool
}

// Step describes the result of executing a filtering step.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status(k candidate.Criteria) Status
}

// Default returns the built-in filters in the order they are combined.
func Default() []Filter {
	return []Filter{
		NewSkills(),
		NewExperience(),
		NewEducation(),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the enabled filters sequentially. Each step keeps the relative
// order of the candidates it lets through.
func Run(log *zap.Logger, steps []Filter, k candidate.Criteria, candidates []candidate.Candidate) ([]candidate.Candidate, []Step) {
	log = logger.WithFields(log)
	left := candidate.CloneAll(candidates)
	info := make([]Step, 0, len(steps))

	for _, step := range steps {
		if !step.IsEnabled() {
			log.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		var dropped []string
		left, dropped = apply(step, k, left)

		s := Step{Name: step.Name(), Initial: len(left) + len(dropped), Dropped: len(dropped), Left: len(left)}
		info = append(info, s)

		if len(dropped) > 0 {
			log.Debug("excluding candidates",
				zap.String("name", step.Name()),
				zap.Strings("excluded_candidates", dropped),
			)
		}

		log.Info("filter step",
			zap.String("name", s.Name),
			zap.Int("initial", s.Initial),
			zap.Int("dropped", s.Dropped),
			zap.Int("left", s.Left),
		)
	}

	return left, info
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter, k candidate.Criteria) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status(k))
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

func apply(f Filter, k candidate.Criteria, candidates []candidate.Candidate) ([]candidate.Candidate, []string) {
	kept := make([]candidate.Candidate, 0, len(candidates))
	var dropped []string

	for _, c := range candidates {
		if f.Match(c, k) {
			kept = append(kept, c)
			continue
		}
		dropped = append(dropped, c.ID)
	}

	return kept, dropped
}
