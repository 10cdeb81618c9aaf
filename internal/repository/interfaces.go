package repository

import (
	"context"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeDone bool) ([]*domain.Task, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Task, error)
	ListStartingOn(ctx context.Context, date time.Time) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

// WorkConfigRepo reads and writes the weekly calendar and SLA table as one
// whole-object snapshot.
type WorkConfigRepo interface {
	Get(ctx context.Context) (*domain.WorkConfig, error)
	Save(ctx context.Context, cfg *domain.WorkConfig) error
	// Seed inserts defaults only when no configuration exists yet.
	Seed(ctx context.Context, cfg *domain.WorkConfig) error
}
