package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 16, hour, minute, 0, 0, time.UTC)
}

func span(startHour, startMinute, endHour, endMinute int) Interval {
	return Interval{Start: at(startHour, startMinute), End: at(endHour, endMinute)}
}

func TestInterval_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		want     bool
	}{
		{name: "positive length", interval: span(9, 0, 10, 0), want: true},
		{name: "zero length", interval: span(9, 0, 9, 0), want: false},
		{name: "inverted", interval: span(10, 0, 9, 0), want: false},
		{name: "zero value", interval: Interval{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.IsValid())
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "partial overlap", a: span(9, 0, 11, 0), b: span(10, 0, 12, 0), want: true},
		{name: "containment", a: span(9, 0, 18, 0), b: span(12, 0, 13, 0), want: true},
		{name: "identical", a: span(9, 0, 10, 0), b: span(9, 0, 10, 0), want: true},
		{name: "touching endpoints", a: span(9, 0, 10, 0), b: span(10, 0, 11, 0), want: false},
		{name: "disjoint", a: span(9, 0, 10, 0), b: span(14, 0, 15, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	outer := span(9, 0, 18, 0)

	assert.True(t, outer.Contains(span(12, 0, 13, 0)))
	assert.True(t, outer.Contains(span(9, 0, 18, 0)))
	assert.True(t, outer.Contains(span(9, 0, 9, 30)))
	assert.False(t, outer.Contains(span(8, 30, 9, 30)))
	assert.False(t, outer.Contains(span(17, 30, 18, 30)))
	assert.False(t, outer.Contains(span(19, 0, 20, 0)))
}

func TestInterval_Subtract(t *testing.T) {
	day := span(9, 0, 18, 0)

	t.Run("middle cut leaves two fragments", func(t *testing.T) {
		got := day.Subtract(span(12, 0, 13, 0))
		require.Len(t, got, 2)
		assert.Equal(t, span(9, 0, 12, 0), got[0])
		assert.Equal(t, span(13, 0, 18, 0), got[1])
	})

	t.Run("cut at start leaves one fragment", func(t *testing.T) {
		got := day.Subtract(span(9, 0, 10, 0))
		require.Len(t, got, 1)
		assert.Equal(t, span(10, 0, 18, 0), got[0])
	})

	t.Run("cut at end leaves one fragment", func(t *testing.T) {
		got := day.Subtract(span(17, 0, 18, 0))
		require.Len(t, got, 1)
		assert.Equal(t, span(9, 0, 17, 0), got[0])
	})

	t.Run("full cover leaves nothing", func(t *testing.T) {
		got := day.Subtract(span(8, 0, 19, 0))
		assert.Empty(t, got)
	})

	t.Run("disjoint interval leaves original", func(t *testing.T) {
		got := day.Subtract(span(19, 0, 20, 0))
		require.Len(t, got, 1)
		assert.Equal(t, day, got[0])
	})

	t.Run("overhang is clipped", func(t *testing.T) {
		got := day.Subtract(span(16, 0, 20, 0))
		require.Len(t, got, 1)
		assert.Equal(t, span(9, 0, 16, 0), got[0])
	})
}

func TestInterval_Duration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, span(9, 0, 10, 30).Duration())
}
