package domain

import "errors"

// Validation failures of the scheduling core. All of them are local,
// recoverable and user-facing; handlers map them to 4xx responses,
// never to process-level faults.
var (
	// ErrInvalidInterval is returned for zero-length or inverted intervals (end <= start).
	ErrInvalidInterval = errors.New("domain: interval end must be after start")

	// ErrOverlappingIntervals is returned when two intervals of the same subject intersect.
	ErrOverlappingIntervals = errors.New("domain: intervals overlap")

	// ErrIncompleteWeekTemplate is returned when a weekly template misses or duplicates a weekday.
	ErrIncompleteWeekTemplate = errors.New("domain: week template must contain each weekday exactly once")

	// ErrOrderingViolation is returned when a dependent "after" field is not strictly after its reference.
	ErrOrderingViolation = errors.New("domain: end must be after start")

	// ErrSlotUnavailable is returned when a requested interval does not fit into free working time.
	ErrSlotUnavailable = errors.New("domain: requested time is not available")

	// ErrDurationMismatch is returned when an interval's length differs from the required service duration.
	ErrDurationMismatch = errors.New("domain: interval duration does not match service duration")
)
