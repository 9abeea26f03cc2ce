package admit_reservation

import (
	"fmt"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.PractitionerID <= 0 {
		return fmt.Errorf("%w: practitionerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateNotice проверяет, что бронирование не нарушает минимальное время до начала
func validateNotice(startAt time.Time, now time.Time, minNoticeMinutes int) error {
	minStart := now.Add(time.Duration(minNoticeMinutes) * time.Minute)
	if startAt.Before(minStart) {
		return fmt.Errorf("%w: must reserve at least %d minutes in advance", ErrTooLateToReserve, minNoticeMinutes)
	}
	return nil
}

// validateServiceProvided проверяет, что мастер оказывает услугу
func validateServiceProvided(service *profileservice.Service, practitionerID int64) error {
	for _, id := range service.PractitionerIDs {
		if id == practitionerID {
			return nil
		}
	}
	return ErrServiceNotProvided
}

// requestedInterval строит абсолютный интервал запроса в бизнес-таймзоне
// Конец - явный EndTime либо начало плюс длительность услуги
func requestedInterval(req *Request, durationMinutes int, loc *time.Location) (domain.Interval, error) {
	start, err := req.StartTime.OnDate(req.Date, loc)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var end time.Time
	if req.EndTime != nil {
		end, err = req.EndTime.OnDate(req.Date, loc)
		if err != nil {
			return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	} else {
		end = start.Add(time.Duration(durationMinutes) * time.Minute)
	}

	return domain.NewInterval(start, end), nil
}

// получение цены услуги; nil трактуется как 0
func servicePrice(service *profileservice.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
