package testutil

import (
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithEstimatedHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = h
	}
}

func WithActualHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.ActualHours = h
	}
}

func WithStartDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = d
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithClientID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ClientID = &id
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:             uuid.New().String(),
		Title:          title,
		Priority:       domain.PriorityMedium,
		Status:         domain.TaskTodo,
		EstimatedHours: 4,
		StartDate:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Client options
type ClientOption func(*domain.Client)

func WithCompany(company string) ClientOption {
	return func(c *domain.Client) {
		c.Company = company
	}
}

func WithClientStatus(s domain.ClientStatus) ClientOption {
	return func(c *domain.Client) {
		c.Status = s
	}
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC()
	c := &domain.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ClientActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
