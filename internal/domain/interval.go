package domain

import "time"

// Interval is a half-open time range [Start, End) between absolute
// instants. Values are immutable; all comparisons below are by instant,
// never by wall-clock fields.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval constructs an interval without validating it.
// Call IsValid (or ValidateIntervals) at the boundary.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// IsValid reports whether the interval has strictly positive length.
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Duration returns the interval length.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (i.End == o.Start) do not count as overlap, so
// adjacent reservations can tile a day without conflicting.
// This is the single overlap predicate used across the repo.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Contains reports whether o lies fully within i.
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

// Subtract removes o from i and returns the remaining sub-intervals:
// the segment before o.Start and the segment after o.End, both clipped
// to i. Zero-length pieces are dropped, so the result has 0, 1 or 2
// elements. Subtracting a non-overlapping interval returns i unchanged.
func (i Interval) Subtract(o Interval) []Interval {
	if !i.Overlaps(o) {
		return []Interval{i}
	}

	remaining := make([]Interval, 0, 2)

	before := Interval{Start: i.Start, End: o.Start}
	if before.IsValid() {
		remaining = append(remaining, before)
	}

	after := Interval{Start: o.End, End: i.End}
	if after.IsValid() {
		remaining = append(remaining, after)
	}

	return remaining
}
