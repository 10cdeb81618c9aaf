package repository

import (
	"context"
	"testing"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/brunocoutinho/prazo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkConfigRepo_Get_EmptyIsNotFound(t *testing.T) {
	repo := NewSQLiteWorkConfigRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkConfigRepo_SaveAndGet_RoundTrip(t *testing.T) {
	repo := NewSQLiteWorkConfigRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	cfg := domain.DefaultWorkConfig()
	cfg.Days[time.Saturday] = domain.DayWindow{Active: true, Start: "10:00", End: "14:00"}
	cfg.SLA[domain.PriorityLow] = domain.SLARule{StartOffsetDays: 7, MaxTasksPerDay: 6}
	require.NoError(t, repo.Save(ctx, cfg))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Days, 7)
	assert.Len(t, got.SLA, 4)
	assert.Equal(t, domain.DayWindow{Active: true, Start: "10:00", End: "14:00"}, got.Days[time.Saturday])
	assert.Equal(t, domain.SLARule{StartOffsetDays: 7, MaxTasksPerDay: 6}, got.SLA[domain.PriorityLow])
}

func TestWorkConfigRepo_Save_ReplacesWholeObject(t *testing.T) {
	repo := NewSQLiteWorkConfigRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.DefaultWorkConfig()))

	updated := domain.DefaultWorkConfig()
	updated.Days[time.Monday] = domain.DayWindow{Active: false, Start: "09:00", End: "18:00"}
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.Days[time.Monday].Active)
}

func TestWorkConfigRepo_Seed_OnlyWhenEmpty(t *testing.T) {
	repo := NewSQLiteWorkConfigRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, domain.DefaultWorkConfig()))

	custom := domain.DefaultWorkConfig()
	custom.Days[time.Friday] = domain.DayWindow{Active: false, Start: "09:00", End: "18:00"}
	require.NoError(t, repo.Seed(ctx, custom), "second seed must be a no-op")

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.Days[time.Friday].Active, "seed must not overwrite existing config")
}
