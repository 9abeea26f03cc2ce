package compute_availability

import (
	"context"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetBySubjectWithFilter получает бронирования мастера за период (снапшот занятых интервалов)
	GetBySubjectWithFilter(ctx context.Context, filter domain.SubjectReservationsFilter) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetWeekSchedule(ctx context.Context, practitionerID int64) (domain.WeekSchedule, error)
	GetOverrides(ctx context.Context, practitionerID int64, from, to time.Time) ([]domain.DayOverride, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetPractitioner(ctx context.Context, practitionerID int64) (*profileservice.Practitioner, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*profileservice.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
