package domain

import (
	"fmt"
	"time"
)

// referenceDate is an arbitrary fixed day used to compare time-of-day
// shift ranges with the same overlap predicate as absolute intervals.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ValidateIntervals checks a set of candidate intervals belonging to the
// same subject. A nil or empty set is valid. Intervals are visited in
// input order: each one must be valid on its own and must not overlap
// any previously accepted interval. The first violation is reported
// with the offending indices.
//
// The pairwise scan is O(n²) on purpose: n is a day's shift or
// reservation count, always small, and the quadratic form keeps the
// check readable. Every element is checked, not just the first.
func ValidateIntervals(intervals []Interval) error {
	for i, candidate := range intervals {
		if !candidate.IsValid() {
			return fmt.Errorf("%w: interval at index %d", ErrInvalidInterval, i)
		}
		for j := 0; j < i; j++ {
			if candidate.Overlaps(intervals[j]) {
				return fmt.Errorf("%w: intervals at indexes %d and %d", ErrOverlappingIntervals, j, i)
			}
		}
	}
	return nil
}

// ValidateShifts applies the interval checks to time-of-day shift
// ranges by anchoring them to a common reference date, so the single
// Overlaps predicate serves both representations.
func ValidateShifts(shifts []ShiftRange) error {
	intervals := make([]Interval, 0, len(shifts))
	for i, shift := range shifts {
		anchored, err := shift.AnchorTo(referenceDate, time.UTC)
		if err != nil {
			return fmt.Errorf("%w: shift at index %d: %v", ErrInvalidInterval, i, err)
		}
		intervals = append(intervals, anchored)
	}
	return ValidateIntervals(intervals)
}

// ValidateWeekdayCompleteness checks that the day rules contain each of
// the seven canonical weekdays exactly once. It is independent of shift
// overlap validity; both checks must pass for a template to be accepted.
func ValidateWeekdayCompleteness(days []DayRule) error {
	if len(days) != 7 {
		return fmt.Errorf("%w: got %d entries", ErrIncompleteWeekTemplate, len(days))
	}

	var seen [7]bool
	for _, day := range days {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrIncompleteWeekTemplate, int(day.Weekday))
		}
		if seen[day.Weekday] {
			return fmt.Errorf("%w: duplicate %s", ErrIncompleteWeekTemplate, day.Weekday)
		}
		seen[day.Weekday] = true
	}

	return nil
}

// ValidateOrdered checks that end is strictly after start when both are
// present. A missing dependent field imposes no constraint, matching
// optional "to" bounds on search ranges.
func ValidateOrdered(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if !end.After(*start) {
		return ErrOrderingViolation
	}
	return nil
}
