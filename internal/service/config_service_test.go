package service

import (
	"context"
	"testing"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/repository"
	"github.com/brunocoutinho/prazo/internal/schedule"
	"github.com/brunocoutinho/prazo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigService_Load_SeedsDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewConfigService(repository.NewSQLiteWorkConfigRepo(database))
	ctx := context.Background()

	cfg, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cfg.Days, 7)
	assert.Len(t, cfg.SLA, 4)
	assert.True(t, cfg.Days[time.Monday].Active)

	// Seeded config must survive a reload.
	again, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestConfigService_Load_RejectsMalformedClock(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkConfigRepo(database)
	ctx := context.Background()

	bad := domain.DefaultWorkConfig()
	bad.Days[time.Tuesday] = domain.DayWindow{Active: true, Start: "soon", End: "18:00"}
	require.NoError(t, repo.Save(ctx, bad), "repo itself does not validate")

	svc := NewConfigService(repo)
	_, err := svc.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrInvalidInput)
}

func TestConfigService_Save_RejectsEmptyWindow(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewConfigService(repository.NewSQLiteWorkConfigRepo(database))
	ctx := context.Background()

	bad := domain.DefaultWorkConfig()
	bad.Days[time.Wednesday] = domain.DayWindow{Active: true, Start: "18:00", End: "09:00"}

	err := svc.Save(ctx, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrInvalidInput)
}

func TestConfigService_Save_RejectsMissingPriority(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewConfigService(repository.NewSQLiteWorkConfigRepo(database))
	ctx := context.Background()

	bad := domain.DefaultWorkConfig()
	delete(bad.SLA, domain.PriorityCritical)

	err := svc.Save(ctx, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrConfigIncomplete)
}

func TestConfigService_SaveThenLoad(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewConfigService(repository.NewSQLiteWorkConfigRepo(database))
	ctx := context.Background()

	cfg, err := svc.Load(ctx)
	require.NoError(t, err)

	cfg.Days[time.Saturday] = domain.DayWindow{Active: true, Start: "10:00", End: "13:00"}
	cfg.SLA[domain.PriorityHigh] = domain.SLARule{StartOffsetDays: 2, MaxTasksPerDay: 2}
	require.NoError(t, svc.Save(ctx, cfg))

	got, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Days[time.Saturday].Active)
	assert.Equal(t, 2, got.SLA[domain.PriorityHigh].StartOffsetDays)
}
