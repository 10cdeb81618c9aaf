package service

import (
	"context"
	"time"

	"github.com/brunocoutinho/prazo/internal/repository"
	"github.com/brunocoutinho/prazo/internal/schedule"
)

type dashboardService struct {
	tasks   repository.TaskRepo
	configs ConfigService
}

func NewDashboardService(tasks repository.TaskRepo, configs ConfigService) DashboardService {
	return &dashboardService{tasks: tasks, configs: configs}
}

func (s *dashboardService) Overview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	date := req.Date
	if date.IsZero() {
		date = now
	}

	cfg, err := s.configs.Load(ctx)
	if err != nil {
		return nil, err
	}
	calendar, err := schedule.NewCalendar(cfg)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, true)
	if err != nil {
		return nil, err
	}

	resp := &OverviewResponse{
		Date:           date,
		Load:           schedule.LoadFor(tasks, date),
		ComplianceRate: schedule.ComplianceRate(tasks, now),
		TotalTasks:     len(tasks),
		Violations:     schedule.Violations(tasks, now),
	}
	if next, ok := calendar.NextActiveDay(now); ok {
		resp.NextWorkday = next
		resp.HasWorkday = true
	}
	return resp, nil
}
