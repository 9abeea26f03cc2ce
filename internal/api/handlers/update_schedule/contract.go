package update_schedule

import (
	"context"

	updateSchedule "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/update_schedule"
)

type UpdateScheduleUseCase interface {
	Execute(ctx context.Context, req *updateSchedule.Request) (*updateSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
