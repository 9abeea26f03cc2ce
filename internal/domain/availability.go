package domain

import (
	"iter"
	"time"
)

// Slot is a contiguous block of free time offerable for a reservation
// on a specific calendar date.
type Slot struct {
	Date     time.Time
	Interval Interval
}

// AvailabilityQuery bundles the immutable inputs of an availability
// computation: the queried date range (calendar days, inclusive), the
// subject's weekly template and overrides, a snapshot of already
// reserved intervals, and the slot granularity.
//
// Location is the business timezone the time-of-day shifts are
// interpreted in. It is threaded explicitly; the calculator never reads
// process-global timezone state.
//
// SlotDuration == 0 yields the raw free fragments without quantization.
type AvailabilityQuery struct {
	From         time.Time
	To           time.Time
	Week         WeekSchedule
	Overrides    []DayOverride
	Booked       []Interval
	SlotDuration time.Duration
	Location     *time.Location
}

// AvailableSlots derives the bookable slots for the query as a lazy,
// restartable sequence: ascending by day, left to right within a day.
// The sequence is finite (bounded by the queried range) and empty when
// To precedes From — the boundary layer rejects inverted ranges earlier
// via ValidateOrdered, so that case is not an error here.
//
// The computation is a pure function over the query value, so iterating
// twice yields identical output.
func AvailableSlots(q AvailabilityQuery) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for date := dateOnly(q.From, q.Location); !date.After(dateOnly(q.To, q.Location)); date = date.AddDate(0, 0, 1) {
			for _, free := range FreeIntervals(q, date) {
				if q.SlotDuration <= 0 {
					if !yield(Slot{Date: date, Interval: free}) {
						return
					}
					continue
				}
				for _, slot := range quantize(free, q.SlotDuration) {
					if !yield(Slot{Date: date, Interval: slot}) {
						return
					}
				}
			}
		}
	}
}

// FreeIntervals computes the un-quantized free fragments for a single
// calendar day: the day's working intervals minus every reserved
// interval that falls on it. Admission checks containment against these
// fragments rather than the quantized slots.
func FreeIntervals(q AvailabilityQuery, date time.Time) []Interval {
	date = dateOnly(date, q.Location)

	working := workingIntervalsOn(q, date)
	if len(working) == 0 {
		return nil
	}

	// Subtract reservations one at a time, re-deriving the remaining
	// fragments after each. Order does not affect the result: the free
	// pieces are disjoint and subtraction removes the same instants
	// regardless of sequence.
	free := working
	for _, booked := range q.Booked {
		if !booked.IsValid() {
			continue
		}
		next := make([]Interval, 0, len(free))
		for _, fragment := range free {
			next = append(next, fragment.Subtract(booked)...)
		}
		free = next
	}

	return free
}

// workingIntervalsOn resolves a date's working shifts — an override for
// that date wins over the weekly template, and a day off yields none —
// then anchors them to absolute intervals in the business timezone.
func workingIntervalsOn(q AvailabilityQuery, date time.Time) []Interval {
	shifts := q.Week.DayShifts(date.Weekday())
	for _, o := range q.Overrides {
		if sameDate(o.Date, date) {
			shifts = o.WorkingShifts()
			break
		}
	}

	intervals := make([]Interval, 0, len(shifts))
	for _, shift := range shifts {
		anchored, err := shift.AnchorTo(date, q.Location)
		if err != nil || !anchored.IsValid() {
			// Malformed shifts are rejected at the update boundary;
			// anything that still slips through is skipped rather than
			// poisoning the whole day.
			continue
		}
		intervals = append(intervals, anchored)
	}

	return intervals
}

// quantize cuts a free fragment into consecutive slots of the given
// granularity. A trailing remainder shorter than the granularity is
// dropped, as is any fragment shorter than one slot.
func quantize(free Interval, granularity time.Duration) []Interval {
	var slots []Interval
	for start := free.Start; !start.Add(granularity).After(free.End); start = start.Add(granularity) {
		slots = append(slots, Interval{Start: start, End: start.Add(granularity)})
	}
	return slots
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
