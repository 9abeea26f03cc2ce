package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// monday 2026-03-16 in UTC
var testDay = time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)

func shift(start, end string) ShiftRange {
	return ShiftRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

// weekWithShifts builds a complete week where every day carries the
// given shifts.
func weekWithShifts(shifts ...ShiftRange) WeekSchedule {
	days := make([]DayRule, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days = append(days, DayRule{Weekday: wd, Shifts: shifts})
	}
	return WeekSchedule{Days: days}
}

func collect(q AvailabilityQuery) []Slot {
	var slots []Slot
	for s := range AvailableSlots(q) {
		slots = append(slots, s)
	}
	return slots
}

func TestFreeIntervals_SubtractsReservations(t *testing.T) {
	q := AvailabilityQuery{
		From:     testDay,
		To:       testDay,
		Week:     weekWithShifts(shift("09:00", "18:00")),
		Booked:   []Interval{span(12, 0, 13, 0)},
		Location: time.UTC,
	}

	free := FreeIntervals(q, testDay)
	require.Len(t, free, 2)
	assert.Equal(t, span(9, 0, 12, 0), free[0])
	assert.Equal(t, span(13, 0, 18, 0), free[1])
}

func TestFreeIntervals_TouchingReservationDoesNotSplit(t *testing.T) {
	q := AvailabilityQuery{
		From:     testDay,
		To:       testDay,
		Week:     weekWithShifts(shift("09:00", "12:00")),
		Booked:   []Interval{span(12, 0, 13, 0)},
		Location: time.UTC,
	}

	free := FreeIntervals(q, testDay)
	require.Len(t, free, 1)
	assert.Equal(t, span(9, 0, 12, 0), free[0])
}

func TestFreeIntervals_EmptyTemplateDay(t *testing.T) {
	q := AvailabilityQuery{
		From:     testDay,
		To:       testDay,
		Week:     weekWithShifts(), // closed every day
		Location: time.UTC,
	}

	assert.Empty(t, FreeIntervals(q, testDay))
}

func TestFreeIntervals_DayOffOverrideWins(t *testing.T) {
	q := AvailabilityQuery{
		From: testDay,
		To:   testDay,
		Week: weekWithShifts(shift("09:00", "18:00")),
		Overrides: []DayOverride{
			{Date: testDay, IsDayOff: true, Shifts: []ShiftRange{shift("10:00", "11:00")}},
		},
		Location: time.UTC,
	}

	// A day off yields no availability even when shifts are present.
	assert.Empty(t, FreeIntervals(q, testDay))
}

func TestFreeIntervals_OverrideReplacesTemplate(t *testing.T) {
	q := AvailabilityQuery{
		From: testDay,
		To:   testDay,
		Week: weekWithShifts(shift("09:00", "18:00")),
		Overrides: []DayOverride{
			{Date: testDay, Shifts: []ShiftRange{shift("14:00", "16:00")}},
		},
		Location: time.UTC,
	}

	free := FreeIntervals(q, testDay)
	require.Len(t, free, 1)
	assert.Equal(t, span(14, 0, 16, 0), free[0])
}

func TestAvailableSlots_Quantized(t *testing.T) {
	q := AvailabilityQuery{
		From:         testDay,
		To:           testDay,
		Week:         weekWithShifts(shift("09:00", "10:30")),
		SlotDuration: 30 * time.Minute,
		Location:     time.UTC,
	}

	slots := collect(q)
	require.Len(t, slots, 3)
	assert.Equal(t, span(9, 0, 9, 30), slots[0].Interval)
	assert.Equal(t, span(9, 30, 10, 0), slots[1].Interval)
	assert.Equal(t, span(10, 0, 10, 30), slots[2].Interval)
	for _, s := range slots {
		assert.True(t, sameDate(s.Date, testDay))
	}
}

func TestAvailableSlots_TrailingRemainderDropped(t *testing.T) {
	q := AvailabilityQuery{
		From:         testDay,
		To:           testDay,
		Week:         weekWithShifts(shift("09:00", "10:20")),
		SlotDuration: 30 * time.Minute,
		Location:     time.UTC,
	}

	slots := collect(q)
	// 09:00-09:30, 09:30-10:00; the 20-minute tail is not offerable.
	require.Len(t, slots, 2)
	assert.Equal(t, span(9, 30, 10, 0), slots[1].Interval)
}

func TestAvailableSlots_FragmentShorterThanSlot(t *testing.T) {
	q := AvailabilityQuery{
		From:         testDay,
		To:           testDay,
		Week:         weekWithShifts(shift("09:00", "09:20")),
		SlotDuration: 30 * time.Minute,
		Location:     time.UTC,
	}

	assert.Empty(t, collect(q))
}

func TestAvailableSlots_MultipleDaysAscending(t *testing.T) {
	q := AvailabilityQuery{
		From:         testDay,
		To:           testDay.AddDate(0, 0, 2),
		Week:         weekWithShifts(shift("09:00", "10:00")),
		SlotDuration: time.Hour,
		Location:     time.UTC,
	}

	slots := collect(q)
	require.Len(t, slots, 3)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Date.Before(slots[i].Date))
	}
}

func TestAvailableSlots_InvertedRangeIsEmpty(t *testing.T) {
	q := AvailabilityQuery{
		From:         testDay.AddDate(0, 0, 1),
		To:           testDay,
		Week:         weekWithShifts(shift("09:00", "18:00")),
		SlotDuration: time.Hour,
		Location:     time.UTC,
	}

	assert.Empty(t, collect(q))
}

func TestAvailableSlots_IterationIsRestartable(t *testing.T) {
	q := AvailabilityQuery{
		From:         testDay,
		To:           testDay.AddDate(0, 0, 1),
		Week:         weekWithShifts(shift("09:00", "12:00")),
		Booked:       []Interval{span(10, 0, 10, 30)},
		SlotDuration: 30 * time.Minute,
		Location:     time.UTC,
	}

	first := collect(q)
	second := collect(q)
	assert.Equal(t, first, second)
}

func TestAvailableSlots_EarlyBreak(t *testing.T) {
	q := AvailabilityQuery{
		From:         testDay,
		To:           testDay.AddDate(0, 0, 6),
		Week:         weekWithShifts(shift("09:00", "18:00")),
		SlotDuration: 30 * time.Minute,
		Location:     time.UTC,
	}

	// The sequence is lazy: a consumer can stop after the first slot.
	var got []Slot
	for s := range AvailableSlots(q) {
		got = append(got, s)
		break
	}
	require.Len(t, got, 1)
	assert.Equal(t, span(9, 0, 9, 30), got[0].Interval)
}

func TestAvailableSlots_ZeroDurationYieldsRawFragments(t *testing.T) {
	q := AvailabilityQuery{
		From:     testDay,
		To:       testDay,
		Week:     weekWithShifts(shift("09:00", "18:00")),
		Booked:   []Interval{span(12, 0, 13, 0)},
		Location: time.UTC,
	}

	slots := collect(q)
	require.Len(t, slots, 2)
	assert.Equal(t, span(9, 0, 12, 0), slots[0].Interval)
	assert.Equal(t, span(13, 0, 18, 0), slots[1].Interval)
}
