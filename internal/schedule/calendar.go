// Package schedule implements the work-calendar and SLA estimation engine:
// calendar-aware schedule queries, priority-based start/delivery projection,
// daily capacity aggregation, and SLA compliance evaluation. Everything in
// this package is a pure computation over an immutable configuration
// snapshot; persistence and presentation live elsewhere.
package schedule

import (
	"fmt"
	"strconv"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
)

// ClockTime is a minute-resolution time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" clock time. Malformed strings are rejected,
// never coerced.
func ParseClock(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, fmt.Errorf("%w: clock time %q (expected HH:MM)", ErrInvalidInput, s)
	}
	h, errH := strconv.Atoi(s[:2])
	m, errM := strconv.Atoi(s[3:])
	if errH != nil || errM != nil {
		return ClockTime{}, fmt.Errorf("%w: clock time %q (expected HH:MM)", ErrInvalidInput, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("%w: clock time %q out of range", ErrInvalidInput, s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// Minutes returns the minute-of-day value, used for ordering comparisons.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is earlier in the day than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c.Minutes() < other.Minutes()
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

type daySpan struct {
	active bool
	start  ClockTime
	end    ClockTime
}

// Calendar answers working-schedule queries over a parsed, read-only
// snapshot of the configured weekly calendar.
type Calendar struct {
	days map[time.Weekday]daySpan
}

// NewCalendar parses and validates the configured day windows. Active days
// with malformed clock times or an empty window (start >= end) are
// configuration errors surfaced immediately, so bad configuration can
// never silently produce wrong delivery dates.
func NewCalendar(cfg *domain.WorkConfig) (Calendar, error) {
	cal := Calendar{days: make(map[time.Weekday]daySpan, 7)}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		win, ok := cfg.Days[wd]
		if !ok {
			return Calendar{}, fmt.Errorf("%w: weekday %s has no window", ErrConfigIncomplete, wd)
		}
		if !win.Active {
			cal.days[wd] = daySpan{}
			continue
		}
		start, err := ParseClock(win.Start)
		if err != nil {
			return Calendar{}, fmt.Errorf("weekday %s start: %w", wd, err)
		}
		end, err := ParseClock(win.End)
		if err != nil {
			return Calendar{}, fmt.Errorf("weekday %s end: %w", wd, err)
		}
		if !start.Before(end) {
			return Calendar{}, fmt.Errorf("%w: weekday %s window %s-%s is empty", ErrInvalidInput, wd, start, end)
		}
		cal.days[wd] = daySpan{active: true, start: start, end: end}
	}
	return cal, nil
}

// IsActive reports whether the given weekday is a working day.
// A weekday absent from the snapshot counts as inactive.
func (c Calendar) IsActive(wd time.Weekday) bool {
	return c.days[wd].active
}

// Bounds returns the working window for the given weekday. ok is false
// when the day is inactive.
func (c Calendar) Bounds(wd time.Weekday) (start, end ClockTime, ok bool) {
	span := c.days[wd]
	return span.start, span.end, span.active
}

// NextActiveDay returns the first working day at or after from, preserving
// from's clock time. ok is false when no weekday is active at all.
func (c Calendar) NextActiveDay(from time.Time) (time.Time, bool) {
	for i := 0; i < 7; i++ {
		candidate := from.AddDate(0, 0, i)
		if c.IsActive(candidate.Weekday()) {
			return candidate, true
		}
	}
	return time.Time{}, false
}
