package schedule

import (
	"fmt"

	"github.com/brunocoutinho/prazo/internal/domain"
)

// Policy is the closed priority-to-rule table. Construction validates that
// every priority is covered, so lookups afterwards cannot miss.
type Policy struct {
	rules map[domain.Priority]domain.SLARule
}

// NewPolicy validates and snapshots the configured SLA table. A missing
// priority or a nonsensical rule is fatal here rather than deferred to
// per-task estimation calls.
func NewPolicy(cfg *domain.WorkConfig) (Policy, error) {
	rules := make(map[domain.Priority]domain.SLARule, len(domain.AllPriorities))
	for _, pr := range domain.AllPriorities {
		rule, ok := cfg.SLA[pr]
		if !ok {
			return Policy{}, fmt.Errorf("%w: priority %s has no SLA rule", ErrConfigIncomplete, pr)
		}
		if rule.StartOffsetDays < 0 {
			return Policy{}, fmt.Errorf("%w: priority %s start offset %d is negative", ErrInvalidInput, pr, rule.StartOffsetDays)
		}
		if rule.MaxTasksPerDay < 1 {
			return Policy{}, fmt.Errorf("%w: priority %s max tasks per day %d must be positive", ErrInvalidInput, pr, rule.MaxTasksPerDay)
		}
		rules[pr] = rule
	}
	return Policy{rules: rules}, nil
}

// Rule returns the SLA rule for the given priority. NewPolicy guarantees
// all four priorities are populated.
func (p Policy) Rule(pr domain.Priority) domain.SLARule {
	return p.rules[pr]
}
