package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID          string
	ClientID    *string
	Title       string
	Description string
	Priority    Priority
	Status      TaskStatus

	// Effort
	EstimatedHours float64
	ActualHours    float64

	// Schedule
	StartDate time.Time
	DueDate   *time.Time

	// Timer state: at most one open session per task.
	IsTracking    bool
	TrackingSince *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the task still counts toward workload and overdue checks.
func (t *Task) IsOpen() bool {
	return t.Status != TaskDone
}

// StartTracking opens a timer session. Starting while a session is
// already open is a no-op: callers toggle, they never double-start.
func (t *Task) StartTracking(now time.Time) {
	if t.IsTracking {
		return
	}
	since := now
	t.IsTracking = true
	t.TrackingSince = &since
	if t.Status == TaskTodo {
		t.Status = TaskInProgress
	}
	t.UpdatedAt = now
}

// StopTracking closes the open session and folds the elapsed wall-clock
// time into ActualHours. Stopping with no open session is a no-op.
func (t *Task) StopTracking(now time.Time) {
	if !t.IsTracking {
		return
	}
	if t.TrackingSince != nil {
		if elapsed := now.Sub(*t.TrackingSince).Hours(); elapsed > 0 {
			t.ActualHours += elapsed
		}
	}
	t.IsTracking = false
	t.TrackingSince = nil
	t.UpdatedAt = now
}

// TrackedHours returns logged effort including the open session, if any.
// Derived read only; it never mutates timer state.
func (t *Task) TrackedHours(now time.Time) float64 {
	if t.IsTracking && t.TrackingSince != nil {
		return t.ActualHours + now.Sub(*t.TrackingSince).Hours()
	}
	return t.ActualHours
}

// MarkDone completes the task, closing any open timer session first.
func (t *Task) MarkDone(now time.Time) error {
	if t.Status == TaskDone {
		return nil
	}
	t.StopTracking(now)
	t.Status = TaskDone
	t.UpdatedAt = now
	return nil
}

// Validate checks the fields the scheduling engine depends on.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if !ValidPriorities[t.Priority] {
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	// Empty status is allowed here; creation fills in the default.
	if t.Status != "" && !ValidTaskStatuses[t.Status] {
		return fmt.Errorf("invalid status %q", t.Status)
	}
	if t.EstimatedHours <= 0 {
		return fmt.Errorf("estimated hours must be positive, got %v", t.EstimatedHours)
	}
	if t.ActualHours < 0 {
		return fmt.Errorf("actual hours must not be negative, got %v", t.ActualHours)
	}
	return nil
}
