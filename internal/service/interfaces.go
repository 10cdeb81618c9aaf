package service

import (
	"context"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/schedule"
)

// ConfigService owns the WorkConfig lifecycle: seed on first use, validate
// on every load and save. Validation failures are fatal setup errors, not
// per-task failures.
type ConfigService interface {
	Load(ctx context.Context) (*domain.WorkConfig, error)
	Save(ctx context.Context, cfg *domain.WorkConfig) error
}

// CreateTaskRequest carries a new task plus scheduling intent.
type CreateTaskRequest struct {
	Task *domain.Task
	// AutoSchedule derives the start date from the priority's SLA offset
	// when the caller did not pick one.
	AutoSchedule bool
	// Now anchors auto-scheduling; zero means time.Now.
	Now time.Time
}

// CreateTaskResult reports the persisted task and the day's start-slot
// usage so callers can warn on a full day.
type CreateTaskResult struct {
	Task  *domain.Task
	Slots schedule.SlotUsage
}

type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (*CreateTaskResult, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeDone bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// ToggleTimer flips the task's timer state and persists the
	// transition immediately. Returns the task after the flip.
	ToggleTimer(ctx context.Context, id string) (*domain.Task, error)

	// Preview computes the coarse start/delivery projection shown before
	// a task is committed.
	Preview(ctx context.Context, priority domain.Priority, estimatedHours float64, now time.Time) (schedule.Projection, error)
}

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

// OverviewRequest scopes the dashboard rollup. Zero Date and Now default
// to today/now.
type OverviewRequest struct {
	Date time.Time
	Now  time.Time
}

// OverviewResponse is the workload banner plus the SLA compliance rollup.
type OverviewResponse struct {
	Date           time.Time
	Load           schedule.DayLoad
	ComplianceRate int
	TotalTasks     int
	Violations     []*domain.Task
	NextWorkday    time.Time
	HasWorkday     bool
}

type DashboardService interface {
	Overview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error)
}
