package schedule

import (
	"testing"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"09:00", ClockTime{9, 0}, false},
		{"18:30", ClockTime{18, 30}, false},
		{"00:00", ClockTime{0, 0}, false},
		{"23:59", ClockTime{23, 59}, false},
		{"24:00", ClockTime{}, true},
		{"09:60", ClockTime{}, true},
		{"9:00", ClockTime{}, true},
		{"0900", ClockTime{}, true},
		{"ab:cd", ClockTime{}, true},
		{"", ClockTime{}, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		} else {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestNewCalendar_Defaults(t *testing.T) {
	cal, err := NewCalendar(domain.DefaultWorkConfig())
	require.NoError(t, err)

	assert.True(t, cal.IsActive(time.Monday))
	assert.False(t, cal.IsActive(time.Sunday))

	start, end, ok := cal.Bounds(time.Wednesday)
	require.True(t, ok)
	assert.Equal(t, "09:00", start.String())
	assert.Equal(t, "18:00", end.String())

	_, _, ok = cal.Bounds(time.Saturday)
	assert.False(t, ok, "inactive day has no bounds")
}

func TestNewCalendar_MissingDay(t *testing.T) {
	cfg := domain.DefaultWorkConfig()
	delete(cfg.Days, time.Thursday)

	_, err := NewCalendar(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigIncomplete)
}

func TestNewCalendar_MalformedClock(t *testing.T) {
	cfg := domain.DefaultWorkConfig()
	cfg.Days[time.Monday] = domain.DayWindow{Active: true, Start: "nine", End: "18:00"}

	_, err := NewCalendar(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewCalendar_EmptyWindow(t *testing.T) {
	cfg := domain.DefaultWorkConfig()
	cfg.Days[time.Monday] = domain.DayWindow{Active: true, Start: "18:00", End: "09:00"}

	_, err := NewCalendar(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewCalendar_InactiveDayIgnoresMalformedTimes(t *testing.T) {
	// Inactive windows carry no meaningful bounds; stale strings are fine.
	cfg := domain.DefaultWorkConfig()
	cfg.Days[time.Sunday] = domain.DayWindow{Active: false, Start: "zz", End: ""}

	cal, err := NewCalendar(cfg)
	require.NoError(t, err)
	assert.False(t, cal.IsActive(time.Sunday))
}

func TestNextActiveDay_SkipsWeekend(t *testing.T) {
	cal, err := NewCalendar(domain.DefaultWorkConfig())
	require.NoError(t, err)

	saturday := time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)
	got, ok := cal.NextActiveDay(saturday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), got, "clock time carries over")
}

func TestNextActiveDay_AlreadyActive(t *testing.T) {
	cal, err := NewCalendar(domain.DefaultWorkConfig())
	require.NoError(t, err)

	tuesday := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	got, ok := cal.NextActiveDay(tuesday)
	require.True(t, ok)
	assert.Equal(t, tuesday, got)
}

func TestNextActiveDay_NoActiveDays(t *testing.T) {
	cfg := domain.DefaultWorkConfig()
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		cfg.Days[wd] = domain.DayWindow{Active: false}
	}
	cal, err := NewCalendar(cfg)
	require.NoError(t, err)

	_, ok := cal.NextActiveDay(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
