package models

import (
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
)

// Request модели

// GetScheduleRequest запрос на получение расписания мастера
type GetScheduleRequest struct {
	PractitionerID int64      `json:"practitionerId"`
	From           *time.Time `json:"from,omitempty"` // Начало окна переопределений (опционально)
	To             *time.Time `json:"to,omitempty"`   // Конец окна переопределений (опционально)
}

// Response модели

// ShiftResponse рабочий интервал в пределах дня
type ShiftResponse struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "13:00"
}

// DayRuleResponse правило недельного шаблона для одного дня
type DayRuleResponse struct {
	Weekday string           `json:"weekday"` // "monday"
	Shifts  []*ShiftResponse `json:"shifts"`  // Пустой список = выходной
}

// OverrideResponse переопределение расписания на конкретную дату
type OverrideResponse struct {
	Date     string           `json:"date"` // "2026-03-15"
	IsDayOff bool             `json:"isDayOff"`
	Shifts   []*ShiftResponse `json:"shifts"`
}

// ScheduleResponse ответ с расписанием мастера
type ScheduleResponse struct {
	PractitionerID int64               `json:"practitionerId"`
	Week           []*DayRuleResponse  `json:"week"`
	Overrides      []*OverrideResponse `json:"overrides"`
	UpdatedAt      *string             `json:"updatedAt,omitempty"`
}

// FromDomainSchedule конвертирует domain расписание в response
func FromDomainSchedule(schedule *domain.SubjectSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		PractitionerID: schedule.PractitionerID,
		Week:           make([]*DayRuleResponse, 0, len(schedule.Week.Days)),
		Overrides:      make([]*OverrideResponse, 0, len(schedule.Overrides)),
	}

	for _, day := range schedule.Week.Days {
		resp.Week = append(resp.Week, &DayRuleResponse{
			Weekday: weekdayName(day.Weekday),
			Shifts:  fromDomainShifts(day.Shifts),
		})
	}

	for _, override := range schedule.Overrides {
		resp.Overrides = append(resp.Overrides, &OverrideResponse{
			Date:     override.Date.Format(domain.DateFormat),
			IsDayOff: override.IsDayOff,
			Shifts:   fromDomainShifts(override.Shifts),
		})
	}

	if !schedule.UpdatedAt.IsZero() {
		updatedAt := schedule.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

func fromDomainShifts(shifts []domain.ShiftRange) []*ShiftResponse {
	result := make([]*ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		result = append(result, &ShiftResponse{
			StartTime: shift.Start.String(),
			EndTime:   shift.End.String(),
		})
	}
	return result
}

func weekdayName(weekday time.Weekday) string {
	switch weekday {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "unknown"
	}
}
