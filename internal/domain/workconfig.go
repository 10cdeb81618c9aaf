package domain

import "time"

// DayWindow is one weekday's working window. Start and End are "HH:MM"
// clock times and only meaningful when Active is true.
type DayWindow struct {
	Active bool
	Start  string
	End    string
}

// SLARule holds the scheduling parameters for one priority level.
type SLARule struct {
	// StartOffsetDays is the minimum calendar days to wait before work
	// may begin. Plain date addition; inactive days are not skipped.
	StartOffsetDays int
	// MaxTasksPerDay caps how many tasks may start on one calendar day
	// at this priority.
	MaxTasksPerDay int
}

// WorkConfig is the organization's operating schedule plus the per-priority
// SLA table. Treated as an immutable snapshot within one estimation pass;
// mutated only through an explicit save and reloaded wholesale.
type WorkConfig struct {
	Days map[time.Weekday]DayWindow
	SLA  map[Priority]SLARule
}

// DefaultWorkConfig returns the seed configuration: Mon–Fri 09:00–18:00,
// weekends off, and the stock SLA table.
func DefaultWorkConfig() *WorkConfig {
	days := make(map[time.Weekday]DayWindow, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		active := wd != time.Saturday && wd != time.Sunday
		days[wd] = DayWindow{Active: active, Start: "09:00", End: "18:00"}
	}
	return &WorkConfig{
		Days: days,
		SLA: map[Priority]SLARule{
			PriorityCritical: {StartOffsetDays: 0, MaxTasksPerDay: 2},
			PriorityHigh:     {StartOffsetDays: 1, MaxTasksPerDay: 3},
			PriorityMedium:   {StartOffsetDays: 3, MaxTasksPerDay: 4},
			PriorityLow:      {StartOffsetDays: 5, MaxTasksPerDay: 5},
		},
	}
}
