package schedule

import (
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
)

// Fixed load-tier thresholds, in estimated hours per day. Policy
// constants, not configuration.
const (
	healthyMaxHours = 6.0
	alertMaxHours   = 8.0
)

// DayLoad is the aggregate estimated workload of one calendar day.
type DayLoad struct {
	TotalHours float64
	Count      int
	Tier       domain.LoadTier
}

// LoadFor sums the estimated hours of open tasks starting on the given
// local calendar day and classifies the result. Empty input is a healthy
// zero load.
func LoadFor(tasks []*domain.Task, date time.Time) DayLoad {
	var load DayLoad
	for _, task := range tasks {
		if !task.IsOpen() {
			continue
		}
		if !SameDay(task.StartDate, date) {
			continue
		}
		load.TotalHours += task.EstimatedHours
		load.Count++
	}
	load.Tier = TierFor(load.TotalHours)
	return load
}

// TierFor classifies a day's total estimated hours. Exactly 8 hours is
// still alert, not overload.
func TierFor(totalHours float64) domain.LoadTier {
	switch {
	case totalHours > alertMaxHours:
		return domain.LoadOverload
	case totalHours > healthyMaxHours:
		return domain.LoadAlert
	default:
		return domain.LoadHealthy
	}
}

// SlotUsage reports start-slot consumption for one priority on one day.
type SlotUsage struct {
	Used int
	Max  int
	Full bool
}

// StartSlots counts open tasks of the given priority starting on the given
// day against the rule's per-day ceiling. Callers warn on Full; the
// ceiling is advisory, never a hard reject.
func StartSlots(tasks []*domain.Task, date time.Time, pr domain.Priority, rule domain.SLARule) SlotUsage {
	usage := SlotUsage{Max: rule.MaxTasksPerDay}
	for _, task := range tasks {
		if !task.IsOpen() || task.Priority != pr {
			continue
		}
		if SameDay(task.StartDate, date) {
			usage.Used++
		}
	}
	usage.Full = usage.Used >= usage.Max
	return usage
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
