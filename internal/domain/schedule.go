package domain

import (
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// ShiftRange is a working time-of-day range within a single day,
// interpreted in the business timezone of the owning schedule.
type ShiftRange struct {
	Start types.TimeString
	End   types.TimeString
}

// AnchorTo binds the time-of-day range to a calendar date in loc,
// producing an absolute interval.
func (s ShiftRange) AnchorTo(date time.Time, loc *time.Location) (Interval, error) {
	start, err := s.Start.OnDate(date, loc)
	if err != nil {
		return Interval{}, err
	}
	end, err := s.End.OnDate(date, loc)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// DayRule holds the recurring working shifts for one weekday.
// Zero shifts means the subject is closed on that weekday.
type DayRule struct {
	Weekday time.Weekday
	Shifts  []ShiftRange
}

// WeekSchedule is a subject's recurring weekly template: exactly seven
// day rules, one per weekday. Completeness is validated at the boundary
// (ValidateWeekdayCompleteness), not re-checked here.
type WeekSchedule struct {
	Days []DayRule
}

// DayShifts returns the template shifts for the given weekday.
func (w WeekSchedule) DayShifts(weekday time.Weekday) []ShiftRange {
	for _, day := range w.Days {
		if day.Weekday == weekday {
			return day.Shifts
		}
	}
	return nil
}

// DayOverride replaces the weekly template's shifts for one specific
// calendar date. IsDayOff forces zero availability regardless of Shifts.
type DayOverride struct {
	Date     time.Time
	IsDayOff bool
	Shifts   []ShiftRange
}

// WorkingShifts returns the override's effective shifts.
func (o DayOverride) WorkingShifts() []ShiftRange {
	if o.IsDayOff {
		return nil
	}
	return o.Shifts
}

// SubjectSchedule is the full scheduling profile of a practitioner:
// the weekly template plus its date-specific overrides. Updates replace
// the whole value (no partial merge).
type SubjectSchedule struct {
	PractitionerID int64
	Week           WeekSchedule
	Overrides      []DayOverride
	UpdatedAt      time.Time
}

// OverrideFor returns the override for the given calendar date, if any.
func (s SubjectSchedule) OverrideFor(date time.Time) (DayOverride, bool) {
	for _, o := range s.Overrides {
		if sameDate(o.Date, date) {
			return o, true
		}
	}
	return DayOverride{}, false
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
