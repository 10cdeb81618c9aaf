package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/brunocoutinho/prazo/internal/domain"
)

// ProductiveHoursPerDay converts estimated effort into elapsed delivery
// days in the preview projection. Agency convention for staff that are
// not fully dedicated to a single task.
const ProductiveHoursPerDay = 6.0

// ProjectionInput drives a preview projection.
type ProjectionInput struct {
	Rule           domain.SLARule
	EstimatedHours float64
	// Reference anchors auto-scheduling, normally "now".
	Reference time.Time
	// AutoSchedule derives the start from Reference plus the rule's
	// offset. When false, ExplicitStart is used verbatim.
	AutoSchedule  bool
	ExplicitStart time.Time
}

// Projection is a projected start/delivery pair.
type Projection struct {
	Start    time.Time
	Delivery time.Time
	// DeliveryDays is the ceil(estimate/productive-hours) day count the
	// delivery was pushed out by.
	DeliveryDays int
}

// PreviewProjection computes the coarse start/delivery estimate shown
// before a task is committed.
//
// The start offset is plain calendar-day addition: inactive days are
// deliberately not skipped in this path. The delivery walk consumes the
// estimate at ProductiveHoursPerDay per calendar day, rounded up. Clock
// time of day carries over from the reference or explicit start.
func PreviewProjection(in ProjectionInput) (Projection, error) {
	if in.EstimatedHours <= 0 {
		return Projection{}, fmt.Errorf("%w: estimated hours must be positive, got %v", ErrInvalidInput, in.EstimatedHours)
	}

	start := in.ExplicitStart
	if in.AutoSchedule {
		start = in.Reference.AddDate(0, 0, in.Rule.StartOffsetDays)
	}

	days := int(math.Ceil(in.EstimatedHours / ProductiveHoursPerDay))
	return Projection{
		Start:        start,
		Delivery:     start.AddDate(0, 0, days),
		DeliveryDays: days,
	}, nil
}

// FallbackDueDate is the commit-time estimate used when a task is
// persisted without an explicit due date: the estimate is added to the
// start as wall-clock hours. Deliberately more precise than
// PreviewProjection; the two variants coexist and must not be conflated.
func FallbackDueDate(start time.Time, estimatedHours float64) (time.Time, error) {
	if estimatedHours <= 0 {
		return time.Time{}, fmt.Errorf("%w: estimated hours must be positive, got %v", ErrInvalidInput, estimatedHours)
	}
	return start.Add(time.Duration(estimatedHours * float64(time.Hour))), nil
}
