package schedule

import (
	"testing"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/stretchr/testify/assert"
)

var complianceNow = time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)

func TestIsViolation_HoursExceeded_FutureDueDate(t *testing.T) {
	// The hours-exceeded rule fires on its own, even with a comfortable due date.
	future := complianceNow.AddDate(0, 0, 7)
	task := &domain.Task{
		Status:         domain.TaskInProgress,
		EstimatedHours: 8,
		ActualHours:    10,
		DueDate:        &future,
	}
	assert.True(t, IsViolation(task, complianceNow))
}

func TestIsViolation_OverdueAndOpen(t *testing.T) {
	past := complianceNow.AddDate(0, 0, -1)
	task := &domain.Task{
		Status:         domain.TaskTodo,
		EstimatedHours: 8,
		ActualHours:    2,
		DueDate:        &past,
	}
	assert.True(t, IsViolation(task, complianceNow))
}

func TestIsViolation_OverdueButDone(t *testing.T) {
	past := complianceNow.AddDate(0, 0, -1)
	task := &domain.Task{
		Status:         domain.TaskDone,
		EstimatedHours: 8,
		ActualHours:    6,
		DueDate:        &past,
	}
	assert.False(t, IsViolation(task, complianceNow), "done tasks cannot be overdue")
}

func TestIsViolation_Compliant(t *testing.T) {
	future := complianceNow.AddDate(0, 0, 3)
	task := &domain.Task{
		Status:         domain.TaskInProgress,
		EstimatedHours: 8,
		ActualHours:    8,
		DueDate:        &future,
	}
	assert.False(t, IsViolation(task, complianceNow), "actual equal to estimate is not a violation")
}

func TestIsViolation_NoDueDate(t *testing.T) {
	task := &domain.Task{
		Status:         domain.TaskTodo,
		EstimatedHours: 4,
		ActualHours:    1,
	}
	assert.False(t, IsViolation(task, complianceNow))
}

func TestComplianceRate_EmptyFleet(t *testing.T) {
	assert.Equal(t, 100, ComplianceRate(nil, complianceNow))
}

func TestComplianceRate_Rounding(t *testing.T) {
	past := complianceNow.AddDate(0, 0, -2)
	tasks := []*domain.Task{
		{Status: domain.TaskTodo, EstimatedHours: 4, DueDate: &past}, // violation
		{Status: domain.TaskTodo, EstimatedHours: 4},
		{Status: domain.TaskTodo, EstimatedHours: 4},
	}
	// 2 of 3 compliant = 66.67 -> 67
	assert.Equal(t, 67, ComplianceRate(tasks, complianceNow))
}

func TestComplianceRate_MonotoneUnderNewViolations(t *testing.T) {
	tasks := []*domain.Task{
		{Status: domain.TaskInProgress, EstimatedHours: 5, ActualHours: 1},
		{Status: domain.TaskInProgress, EstimatedHours: 5, ActualHours: 2},
		{Status: domain.TaskInProgress, EstimatedHours: 5, ActualHours: 3},
		{Status: domain.TaskInProgress, EstimatedHours: 5, ActualHours: 4},
	}
	prev := ComplianceRate(tasks, complianceNow)
	assert.Equal(t, 100, prev)

	for _, task := range tasks {
		task.ActualHours = task.EstimatedHours + 1
		cur := ComplianceRate(tasks, complianceNow)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 0, prev)
}

func TestViolations_FiltersOffenders(t *testing.T) {
	past := complianceNow.AddDate(0, 0, -1)
	offender := &domain.Task{ID: "a", Status: domain.TaskTodo, EstimatedHours: 2, DueDate: &past}
	clean := &domain.Task{ID: "b", Status: domain.TaskTodo, EstimatedHours: 2}

	got := Violations([]*domain.Task{offender, clean}, complianceNow)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
