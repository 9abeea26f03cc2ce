package update_schedule

import (
	"context"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// ReplaceForSubject полностью заменяет расписание мастера (шаблон + переопределения)
	ReplaceForSubject(ctx context.Context, practitionerID int64, week domain.WeekSchedule, overrides []domain.DayOverride) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetPractitioner(ctx context.Context, practitionerID int64) (*profileservice.Practitioner, error)
	GetSalon(ctx context.Context, salonID int64) (*profileservice.Salon, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
