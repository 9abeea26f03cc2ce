package update_schedule

import (
	"fmt"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	updateSchedule "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/update_schedule"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// UpdateScheduleRequest HTTP request model
// Заменяет расписание мастера целиком: недельный шаблон и переопределения дат
type UpdateScheduleRequest struct {
	Week      []DayRule     `json:"week"`
	Overrides []DayOverride `json:"overrides"`
}

// DayRule правило недельного шаблона для одного дня
type DayRule struct {
	Weekday string  `json:"weekday"` // "monday" ... "sunday"
	Shifts  []Shift `json:"shifts"`  // Пустой список = выходной
}

// DayOverride переопределение расписания на конкретную дату
type DayOverride struct {
	Date     string  `json:"date"` // "2026-03-15"
	IsDayOff bool    `json:"isDayOff"`
	Shifts   []Shift `json:"shifts"`
}

// Shift рабочий интервал в пределах дня
type Shift struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "13:00"
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	PractitionerID int64         `json:"practitionerId"`
	Week           []DayRule     `json:"week"`
	Overrides      []DayOverride `json:"overrides"`
	UpdatedAt      string        `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID берётся из контекста аутентификации
func (r *UpdateScheduleRequest) ToUseCaseRequest(userID, practitionerID int64) (*updateSchedule.Request, error) {
	days := make([]domain.DayRule, 0, len(r.Week))
	for _, day := range r.Week {
		weekday, err := parseWeekday(day.Weekday)
		if err != nil {
			return nil, err
		}

		shifts, err := toDomainShifts(day.Shifts)
		if err != nil {
			return nil, err
		}

		days = append(days, domain.DayRule{
			Weekday: weekday,
			Shifts:  shifts,
		})
	}

	overrides := make([]domain.DayOverride, 0, len(r.Overrides))
	for _, override := range r.Overrides {
		date, err := time.Parse(domain.DateFormat, override.Date)
		if err != nil {
			return nil, err
		}

		shifts, err := toDomainShifts(override.Shifts)
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, domain.DayOverride{
			Date:     date,
			IsDayOff: override.IsDayOff,
			Shifts:   shifts,
		})
	}

	return &updateSchedule.Request{
		UserID:         userID,
		PractitionerID: practitionerID,
		Days:           days,
		Overrides:      overrides,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *ScheduleResponse {
	week := make([]DayRule, 0, len(resp.Days))
	for _, day := range resp.Days {
		week = append(week, DayRule{
			Weekday: weekdayName(day.Weekday),
			Shifts:  fromDomainShifts(day.Shifts),
		})
	}

	overrides := make([]DayOverride, 0, len(resp.Overrides))
	for _, override := range resp.Overrides {
		overrides = append(overrides, DayOverride{
			Date:     override.Date.Format(domain.DateFormat),
			IsDayOff: override.IsDayOff,
			Shifts:   fromDomainShifts(override.Shifts),
		})
	}

	return &ScheduleResponse{
		PractitionerID: resp.PractitionerID,
		Week:           week,
		Overrides:      overrides,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

func toDomainShifts(shifts []Shift) ([]domain.ShiftRange, error) {
	result := make([]domain.ShiftRange, 0, len(shifts))
	for _, shift := range shifts {
		start, err := types.NewTimeStringFromString(shift.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(shift.EndTime)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.ShiftRange{Start: start, End: end})
	}
	return result, nil
}

func fromDomainShifts(shifts []domain.ShiftRange) []Shift {
	result := make([]Shift, 0, len(shifts))
	for _, shift := range shifts {
		result = append(result, Shift{
			StartTime: shift.Start.String(),
			EndTime:   shift.End.String(),
		})
	}
	return result
}

func parseWeekday(name string) (time.Weekday, error) {
	switch name {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("unknown weekday: %s", name)
	}
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
