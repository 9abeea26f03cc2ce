package schedule

import (
	"context"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetWeekSchedule(ctx context.Context, practitionerID int64) (domain.WeekSchedule, error)
	GetOverrides(ctx context.Context, practitionerID int64, from, to time.Time) ([]domain.DayOverride, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetPractitioner(ctx context.Context, practitionerID int64) (*profileservice.Practitioner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
