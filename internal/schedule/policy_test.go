package schedule

import (
	"testing"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_Defaults(t *testing.T) {
	policy, err := NewPolicy(domain.DefaultWorkConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, policy.Rule(domain.PriorityCritical).StartOffsetDays)
	assert.Equal(t, 5, policy.Rule(domain.PriorityLow).StartOffsetDays)
	assert.Positive(t, policy.Rule(domain.PriorityMedium).MaxTasksPerDay)
}

func TestNewPolicy_MissingPriority(t *testing.T) {
	cfg := domain.DefaultWorkConfig()
	delete(cfg.SLA, domain.PriorityMedium)

	_, err := NewPolicy(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigIncomplete)
	assert.Contains(t, err.Error(), "medium")
}

func TestNewPolicy_NegativeOffset(t *testing.T) {
	cfg := domain.DefaultWorkConfig()
	cfg.SLA[domain.PriorityHigh] = domain.SLARule{StartOffsetDays: -1, MaxTasksPerDay: 3}

	_, err := NewPolicy(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewPolicy_ZeroMaxTasks(t *testing.T) {
	cfg := domain.DefaultWorkConfig()
	cfg.SLA[domain.PriorityLow] = domain.SLARule{StartOffsetDays: 5, MaxTasksPerDay: 0}

	_, err := NewPolicy(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
