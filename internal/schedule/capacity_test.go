package schedule

import (
	"testing"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/stretchr/testify/assert"
)

var loadDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func taskOn(date time.Time, hours float64, status domain.TaskStatus) *domain.Task {
	return &domain.Task{
		Title:          "t",
		Priority:       domain.PriorityMedium,
		Status:         status,
		EstimatedHours: hours,
		StartDate:      date,
	}
}

func TestLoadFor_Empty(t *testing.T) {
	load := LoadFor(nil, loadDate)
	assert.Equal(t, DayLoad{TotalHours: 0, Count: 0, Tier: domain.LoadHealthy}, load)
}

func TestLoadFor_BoundaryExactlyEightIsAlert(t *testing.T) {
	tasks := []*domain.Task{
		taskOn(loadDate, 3, domain.TaskTodo),
		taskOn(loadDate, 5, domain.TaskTodo),
	}
	load := LoadFor(tasks, loadDate)

	assert.InDelta(t, 8.0, load.TotalHours, 1e-9)
	assert.Equal(t, 2, load.Count)
	assert.Equal(t, domain.LoadAlert, load.Tier)
}

func TestLoadFor_SkipsDoneAndOtherDays(t *testing.T) {
	tasks := []*domain.Task{
		taskOn(loadDate, 4, domain.TaskTodo),
		taskOn(loadDate, 9, domain.TaskDone),
		taskOn(loadDate.AddDate(0, 0, 1), 5, domain.TaskTodo),
	}
	load := LoadFor(tasks, loadDate)

	assert.InDelta(t, 4.0, load.TotalHours, 1e-9)
	assert.Equal(t, 1, load.Count)
	assert.Equal(t, domain.LoadHealthy, load.Tier)
}

func TestLoadFor_SameDayDifferentClockTimes(t *testing.T) {
	tasks := []*domain.Task{
		taskOn(loadDate.Add(2*time.Hour), 3, domain.TaskTodo),
		taskOn(loadDate.Add(20*time.Hour), 3, domain.TaskInProgress),
	}
	load := LoadFor(tasks, loadDate)
	assert.Equal(t, 2, load.Count)
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		hours float64
		want  domain.LoadTier
	}{
		{0, domain.LoadHealthy},
		{6, domain.LoadHealthy},
		{6.5, domain.LoadAlert},
		{8, domain.LoadAlert},
		{8.01, domain.LoadOverload},
		{14, domain.LoadOverload},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.hours), "hours=%v", tc.hours)
	}
}

func TestLoadFor_TierMonotonic(t *testing.T) {
	// Adding tasks or growing an estimate never lowers the tier.
	rank := map[domain.LoadTier]int{
		domain.LoadHealthy:  0,
		domain.LoadAlert:    1,
		domain.LoadOverload: 2,
	}

	var tasks []*domain.Task
	prev := LoadFor(tasks, loadDate)
	for i := 0; i < 6; i++ {
		tasks = append(tasks, taskOn(loadDate, 2, domain.TaskTodo))
		cur := LoadFor(tasks, loadDate)
		assert.GreaterOrEqual(t, cur.TotalHours, prev.TotalHours)
		assert.GreaterOrEqual(t, rank[cur.Tier], rank[prev.Tier])
		prev = cur
	}

	tasks[0].EstimatedHours += 3
	cur := LoadFor(tasks, loadDate)
	assert.GreaterOrEqual(t, cur.TotalHours, prev.TotalHours)
	assert.GreaterOrEqual(t, rank[cur.Tier], rank[prev.Tier])
}

func TestStartSlots(t *testing.T) {
	rule := domain.SLARule{StartOffsetDays: 1, MaxTasksPerDay: 2}
	high := func(date time.Time, status domain.TaskStatus) *domain.Task {
		task := taskOn(date, 2, status)
		task.Priority = domain.PriorityHigh
		return task
	}

	tasks := []*domain.Task{
		high(loadDate, domain.TaskTodo),
		high(loadDate, domain.TaskDone),              // done: ignored
		taskOn(loadDate, 2, domain.TaskTodo),         // other priority: ignored
		high(loadDate.AddDate(0, 0, 2), domain.TaskTodo), // other day: ignored
	}

	usage := StartSlots(tasks, loadDate, domain.PriorityHigh, rule)
	assert.Equal(t, SlotUsage{Used: 1, Max: 2, Full: false}, usage)

	tasks = append(tasks, high(loadDate, domain.TaskInProgress))
	usage = StartSlots(tasks, loadDate, domain.PriorityHigh, rule)
	assert.Equal(t, SlotUsage{Used: 2, Max: 2, Full: true}, usage)
}
