package schedule

import (
	"math"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
)

// IsViolation reports whether a task breaks its SLA: logged effort exceeds
// the estimate, or the due date has passed while the task is still open.
// The two rules fire independently.
func IsViolation(task *domain.Task, now time.Time) bool {
	if task.ActualHours > task.EstimatedHours {
		return true
	}
	return task.IsOpen() && task.DueDate != nil && task.DueDate.Before(now)
}

// Violations filters the tasks currently in violation.
func Violations(tasks []*domain.Task, now time.Time) []*domain.Task {
	var out []*domain.Task
	for _, task := range tasks {
		if IsViolation(task, now) {
			out = append(out, task)
		}
	}
	return out
}

// ComplianceRate is the rounded percentage of tasks not in violation.
// An empty fleet is vacuously 100% compliant.
func ComplianceRate(tasks []*domain.Task, now time.Time) int {
	if len(tasks) == 0 {
		return 100
	}
	violations := 0
	for _, task := range tasks {
		if IsViolation(task, now) {
			violations++
		}
	}
	return int(math.Round(100 * float64(len(tasks)-violations) / float64(len(tasks))))
}
