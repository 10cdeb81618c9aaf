package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/repository"
	"github.com/google/uuid"
)

type clientService struct {
	clients repository.ClientRepo
}

func NewClientService(clients repository.ClientRepo) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = domain.ClientActive
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.clients.Create(ctx, c)
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}
	c.UpdatedAt = time.Now().UTC()
	return s.clients.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}
