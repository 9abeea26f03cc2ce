package compute_availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, cfg Config) error {
	if req.PractitionerID <= 0 {
		return fmt.Errorf("%w: practitionerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}

	// Границы диапазона - календарные дни (To включительно), поэтому проверка
	// порядка идет по концу дня To: from == to - это валидный однодневный запрос
	toEnd := dayStart(req.To, cfg.Location).AddDate(0, 0, 1)
	fromStart := dayStart(req.From, cfg.Location)
	if err := domain.ValidateOrdered(&fromStart, &toEnd); err != nil {
		if errors.Is(err, domain.ErrOrderingViolation) {
			return ErrInvalidRange
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if cfg.MaxRangeDays > 0 {
		days := int(toEnd.Sub(fromStart).Hours() / 24)
		if days > cfg.MaxRangeDays {
			return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, cfg.MaxRangeDays)
		}
	}

	if req.GranularityMinutes != nil {
		g := *req.GranularityMinutes
		if g < domain.MinSlotGranularityMinutes || g > domain.MaxSlotGranularityMinutes {
			return fmt.Errorf("%w: granularity must be between %d and %d minutes",
				ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
		}
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

// dayStart обнуляет время, оставляя только календарный день в loc
func dayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
