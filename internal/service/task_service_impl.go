package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brunocoutinho/prazo/internal/db"
	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/repository"
	"github.com/brunocoutinho/prazo/internal/schedule"
	"github.com/google/uuid"
)

type taskService struct {
	tasks   repository.TaskRepo
	configs ConfigService
	uow     db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, configs ConfigService, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, configs: configs, uow: uow}
}

func (s *taskService) Create(ctx context.Context, req CreateTaskRequest) (*CreateTaskResult, error) {
	task := req.Task
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = domain.TaskTodo
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return nil, err
	}
	policy, err := schedule.NewPolicy(cfg)
	if err != nil {
		return nil, err
	}
	rule := policy.Rule(task.Priority)

	if req.AutoSchedule && task.StartDate.IsZero() {
		projection, err := schedule.PreviewProjection(schedule.ProjectionInput{
			Rule:           rule,
			EstimatedHours: task.EstimatedHours,
			Reference:      now,
			AutoSchedule:   true,
		})
		if err != nil {
			return nil, err
		}
		task.StartDate = projection.Start
	}
	if task.StartDate.IsZero() {
		task.StartDate = now
	}

	// Commit-time fallback: no user-supplied due date means estimate
	// hours added to the start as wall-clock time. Never recomputed after
	// creation.
	if task.DueDate == nil {
		due, err := schedule.FallbackDueDate(task.StartDate, task.EstimatedHours)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}

	task.CreatedAt = now.UTC()
	task.UpdatedAt = now.UTC()

	sameDay, err := s.tasks.ListStartingOn(ctx, task.StartDate)
	if err != nil {
		return nil, err
	}
	slots := schedule.StartSlots(sameDay, task.StartDate, task.Priority, rule)

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	// Usage includes the task just created.
	slots.Used++
	slots.Full = slots.Used >= slots.Max
	return &CreateTaskResult{Task: task, Slots: slots}, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeDone bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, includeDone)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		task, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := task.MarkDone(time.Now()); err != nil {
			return err
		}
		return txTasks.Update(ctx, task)
	})
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) ToggleTimer(ctx context.Context, id string) (*domain.Task, error) {
	var toggled *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		task, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		now := time.Now()
		if task.IsTracking {
			task.StopTracking(now)
		} else {
			task.StartTracking(now)
		}

		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}
		toggled = task
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggling timer: %w", err)
	}
	return toggled, nil
}

func (s *taskService) Preview(ctx context.Context, priority domain.Priority, estimatedHours float64, now time.Time) (schedule.Projection, error) {
	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return schedule.Projection{}, err
	}
	policy, err := schedule.NewPolicy(cfg)
	if err != nil {
		return schedule.Projection{}, err
	}
	return schedule.PreviewProjection(schedule.ProjectionInput{
		Rule:           policy.Rule(priority),
		EstimatedHours: estimatedHours,
		Reference:      now,
		AutoSchedule:   true,
	})
}
