package update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	profileClient "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
)

// UseCase use case для полной замены расписания мастера
type UseCase struct {
	scheduleRepo  ScheduleRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:  scheduleRepo,
		profileClient: profileClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case замены расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: user=%d, practitioner=%d, overrides=%d",
		req.UserID, req.PractitionerID, len(req.Overrides))

	// 1. Валидация входных данных (полнота недели, смены, переопределения)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера
	practitioner, err := uc.profileClient.GetPractitioner(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, profileClient.ErrPractitionerNotFound) {
			uc.logger.Warn("UpdateSchedule: practitioner id=%d not found", req.PractitionerID)
			return nil, ErrPractitionerNotFound
		}
		uc.logger.Error("UpdateSchedule: failed to get practitioner id=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: failed to get practitioner: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа: менеджер салона или сам мастер
	if err := uc.checkAccess(ctx, practitioner, req.UserID); err != nil {
		uc.logger.Warn("UpdateSchedule: access denied for user=%d, practitioner=%d",
			req.UserID, req.PractitionerID)
		return nil, err
	}

	// 4. Полностью заменяем расписание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		week := weekFromDays(req.Days)
		if err := uc.scheduleRepo.ReplaceForSubject(txCtx, req.PractitionerID, week, req.Overrides); err != nil {
			uc.logger.Error("UpdateSchedule: failed to replace schedule: %v", err)
			return fmt.Errorf("%w: failed to replace schedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSchedule: successfully replaced schedule for practitioner=%d", req.PractitionerID)

	return &Response{
		PractitionerID: req.PractitionerID,
		Days:           req.Days,
		Overrides:      req.Overrides,
		UpdatedAt:      uc.timeProvider.Now(),
	}, nil
}

// checkAccess проверяет, что пользователь - сам мастер или менеджер его салона
func (uc *UseCase) checkAccess(ctx context.Context, practitioner *profileClient.Practitioner, userID int64) error {
	if practitioner.ID == userID {
		return nil
	}

	salon, err := uc.profileClient.GetSalon(ctx, practitioner.SalonID)
	if err != nil {
		if errors.Is(err, profileClient.ErrSalonNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	for _, managerID := range salon.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	return ErrAccessDenied
}

func weekFromDays(days []domain.DayRule) domain.WeekSchedule {
	return domain.WeekSchedule{Days: days}
}
