package update_schedule

import (
	"errors"
	"fmt"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Оба инварианта шаблона независимы и проверяются оба: полнота дней недели
// и корректность/непересечение смен каждого дня
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PractitionerID <= 0 {
		return fmt.Errorf("%w: practitionerID must be positive", ErrInvalidInput)
	}

	if err := domain.ValidateWeekdayCompleteness(req.Days); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompleteWeek, err)
	}

	for _, day := range req.Days {
		if len(day.Shifts) > domain.MaxShiftsPerDay {
			return fmt.Errorf("%w: %s has more than %d shifts", ErrInvalidInput, day.Weekday, domain.MaxShiftsPerDay)
		}
		if err := validateShifts(day.Shifts, day.Weekday.String()); err != nil {
			return err
		}
	}

	return validateOverrides(req.Overrides)
}

// validateOverrides валидирует переопределения дат: дата указана и уникальна,
// смены корректны и не пересекаются. Для выходного дня (IsDayOff) смены игнорируются
func validateOverrides(overrides []domain.DayOverride) error {
	if len(overrides) > domain.MaxOverridesPerUpdate {
		return fmt.Errorf("%w: at most %d overrides per update", ErrInvalidInput, domain.MaxOverridesPerUpdate)
	}

	seen := make(map[string]bool, len(overrides))
	for i, override := range overrides {
		if override.Date.IsZero() {
			return fmt.Errorf("%w: override at index %d has no date", ErrInvalidOverride, i)
		}

		key := override.Date.Format(domain.DateFormat)
		if seen[key] {
			return fmt.Errorf("%w: duplicate override for %s", ErrInvalidOverride, key)
		}
		seen[key] = true

		if override.IsDayOff {
			continue
		}
		if len(override.Shifts) > domain.MaxShiftsPerDay {
			return fmt.Errorf("%w: override %s has more than %d shifts", ErrInvalidInput, key, domain.MaxShiftsPerDay)
		}
		if err := validateShifts(override.Shifts, key); err != nil {
			return err
		}
	}

	return nil
}

// validateShifts проверяет смены одного дня через доменный валидатор интервалов
func validateShifts(shifts []domain.ShiftRange, day string) error {
	err := domain.ValidateShifts(shifts)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrOverlappingIntervals):
		return fmt.Errorf("%w: %s: %v", ErrOverlappingShifts, day, err)
	case errors.Is(err, domain.ErrInvalidInterval):
		return fmt.Errorf("%w: %s: %v", ErrInvalidShift, day, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, day, err)
	}
}
