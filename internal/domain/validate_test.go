package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

func TestValidateIntervals(t *testing.T) {
	t.Run("empty set is valid", func(t *testing.T) {
		assert.NoError(t, ValidateIntervals(nil))
		assert.NoError(t, ValidateIntervals([]Interval{}))
	})

	t.Run("disjoint intervals are valid", func(t *testing.T) {
		err := ValidateIntervals([]Interval{
			span(9, 0, 12, 0),
			span(13, 0, 18, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("touching intervals are valid", func(t *testing.T) {
		err := ValidateIntervals([]Interval{
			span(9, 0, 12, 0),
			span(12, 0, 18, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("invalid element is reported with its index", func(t *testing.T) {
		err := ValidateIntervals([]Interval{
			span(9, 0, 12, 0),
			span(14, 0, 13, 0),
		})
		require.ErrorIs(t, err, ErrInvalidInterval)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("overlap is reported with both indexes", func(t *testing.T) {
		err := ValidateIntervals([]Interval{
			span(9, 0, 12, 0),
			span(13, 0, 18, 0),
			span(11, 0, 14, 0),
		})
		require.ErrorIs(t, err, ErrOverlappingIntervals)
		assert.Contains(t, err.Error(), "0 and 2")
	})

	t.Run("violation past the first pair is still found", func(t *testing.T) {
		err := ValidateIntervals([]Interval{
			span(9, 0, 10, 0),
			span(11, 0, 12, 0),
			span(13, 0, 14, 0),
			span(13, 30, 15, 0),
		})
		require.ErrorIs(t, err, ErrOverlappingIntervals)
	})
}

func TestValidateShifts(t *testing.T) {
	t.Run("ordered shifts are valid", func(t *testing.T) {
		err := ValidateShifts([]ShiftRange{
			{Start: types.TimeString("09:00"), End: types.TimeString("13:00")},
			{Start: types.TimeString("14:00"), End: types.TimeString("18:00")},
		})
		assert.NoError(t, err)
	})

	t.Run("inverted shift is invalid", func(t *testing.T) {
		err := ValidateShifts([]ShiftRange{
			{Start: types.TimeString("13:00"), End: types.TimeString("09:00")},
		})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("overlapping shifts are invalid", func(t *testing.T) {
		err := ValidateShifts([]ShiftRange{
			{Start: types.TimeString("09:00"), End: types.TimeString("13:00")},
			{Start: types.TimeString("12:00"), End: types.TimeString("18:00")},
		})
		assert.ErrorIs(t, err, ErrOverlappingIntervals)
	})

	t.Run("malformed time string is invalid", func(t *testing.T) {
		err := ValidateShifts([]ShiftRange{
			{Start: types.TimeString("nine"), End: types.TimeString("13:00")},
		})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func fullWeek() []DayRule {
	days := make([]DayRule, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days = append(days, DayRule{Weekday: wd})
	}
	return days
}

func TestValidateWeekdayCompleteness(t *testing.T) {
	t.Run("complete week is valid", func(t *testing.T) {
		assert.NoError(t, ValidateWeekdayCompleteness(fullWeek()))
	})

	t.Run("missing day", func(t *testing.T) {
		err := ValidateWeekdayCompleteness(fullWeek()[:6])
		assert.ErrorIs(t, err, ErrIncompleteWeekTemplate)
	})

	t.Run("duplicate day", func(t *testing.T) {
		days := fullWeek()
		days[6].Weekday = time.Monday
		err := ValidateWeekdayCompleteness(days)
		assert.ErrorIs(t, err, ErrIncompleteWeekTemplate)
	})

	t.Run("unknown weekday", func(t *testing.T) {
		days := fullWeek()
		days[0].Weekday = time.Weekday(9)
		err := ValidateWeekdayCompleteness(days)
		assert.ErrorIs(t, err, ErrIncompleteWeekTemplate)
	})

	t.Run("empty set", func(t *testing.T) {
		err := ValidateWeekdayCompleteness(nil)
		assert.ErrorIs(t, err, ErrIncompleteWeekTemplate)
	})
}

func TestValidateOrdered(t *testing.T) {
	early := at(9, 0)
	late := at(10, 0)

	t.Run("ordered pair is valid", func(t *testing.T) {
		assert.NoError(t, ValidateOrdered(&early, &late))
	})

	t.Run("missing bound imposes no constraint", func(t *testing.T) {
		assert.NoError(t, ValidateOrdered(nil, &late))
		assert.NoError(t, ValidateOrdered(&early, nil))
		assert.NoError(t, ValidateOrdered(nil, nil))
	})

	t.Run("equal instants violate ordering", func(t *testing.T) {
		assert.ErrorIs(t, ValidateOrdered(&early, &early), ErrOrderingViolation)
	})

	t.Run("inverted pair violates ordering", func(t *testing.T) {
		assert.ErrorIs(t, ValidateOrdered(&late, &early), ErrOrderingViolation)
	})
}
