package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/repository"
	"github.com/brunocoutinho/prazo/internal/schedule"
)

type configService struct {
	configs repository.WorkConfigRepo
}

func NewConfigService(configs repository.WorkConfigRepo) ConfigService {
	return &configService{configs: configs}
}

func (s *configService) Load(ctx context.Context) (*domain.WorkConfig, error) {
	cfg, err := s.configs.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		cfg = domain.DefaultWorkConfig()
		if seedErr := s.configs.Seed(ctx, cfg); seedErr != nil {
			return nil, fmt.Errorf("seeding work config: %w", seedErr)
		}
	} else if err != nil {
		return nil, fmt.Errorf("loading work config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *configService) Save(ctx context.Context, cfg *domain.WorkConfig) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if err := s.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("saving work config: %w", err)
	}
	return nil
}

// validateConfig runs the engine's own constructors over the snapshot so
// a configuration that cannot estimate is rejected before it is ever used.
func validateConfig(cfg *domain.WorkConfig) error {
	if _, err := schedule.NewCalendar(cfg); err != nil {
		return fmt.Errorf("work calendar: %w", err)
	}
	if _, err := schedule.NewPolicy(cfg); err != nil {
		return fmt.Errorf("sla rules: %w", err)
	}
	return nil
}
