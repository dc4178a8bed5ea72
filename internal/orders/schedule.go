package orders

import (
	"time"

	"github.com/uniformdn/orderdesk/internal/shared"
)

// nearDeadlineDays is the warning threshold for upcoming deliveries.
const nearDeadlineDays = 3

// ExpectedCompletion derives the delivery date from the order date
// plus execution days. Returns the zero time when the inputs cannot
// drive the derivation.
func ExpectedCompletion(orderDate time.Time, executionDays int) time.Time {
	if orderDate.IsZero() || executionDays < 0 {
		return time.Time{}
	}
	return shared.DateOnly(orderDate).AddDate(0, 0, executionDays)
}

// ExecutionDaysFor derives the day span when the expected date does
// not precede the order date. When it does, ok is false and the caller
// keeps the previous value: an expected date moved before the order
// date is accepted without recomputing execution days.
func ExecutionDaysFor(orderDate, expected time.Time) (days int, ok bool) {
	if orderDate.IsZero() || expected.IsZero() {
		return 0, false
	}
	d := shared.DaysBetween(orderDate, expected)
	if d < 0 {
		return 0, false
	}
	return d, true
}

// TimelineState classifies an order's schedule for display.
type TimelineState string

const (
	TimelineCompleted    TimelineState = "COMPLETED"
	TimelineNoDeadline   TimelineState = "NO_DEADLINE"
	TimelineOnTrack      TimelineState = "ON_TRACK"
	TimelineNearDeadline TimelineState = "NEAR_DEADLINE"
	TimelineOverdue      TimelineState = "OVERDUE"
)

// Timeline is the display-time schedule evaluation. It is derived on
// demand and never persisted on the order.
type Timeline struct {
	State           TimelineState
	ProgressPercent float64
	RemainingDays   int
	DaysLate        int
}

// EvaluateTimeline computes the progress bar data for one order.
// Completed orders always read 100% with no lateness.
func EvaluateTimeline(o Order, now time.Time) Timeline {
	if o.Status == StatusCompleted {
		return Timeline{State: TimelineCompleted, ProgressPercent: 100}
	}
	if o.ExpectedCompletionDate.IsZero() {
		return Timeline{State: TimelineNoDeadline}
	}

	total := shared.DaysBetween(o.OrderDate, o.ExpectedCompletionDate)
	if total < 1 {
		total = 1
	}
	elapsed := shared.DaysBetween(o.OrderDate, now)
	if elapsed < 0 {
		elapsed = 0
	}
	progress := float64(elapsed) / float64(total) * 100
	if progress > 100 {
		progress = 100
	}

	remaining := shared.DaysBetween(now, o.ExpectedCompletionDate)
	tl := Timeline{ProgressPercent: progress, RemainingDays: remaining}
	switch {
	case remaining < 0:
		tl.State = TimelineOverdue
		tl.DaysLate = -remaining
	case remaining <= nearDeadlineDays:
		tl.State = TimelineNearDeadline
	default:
		tl.State = TimelineOnTrack
	}
	return tl
}
