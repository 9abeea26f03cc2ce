package admit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	reservationRepo "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/infra/storage/reservation"
	profileClient "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	profileClient   ProfileServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	cfg             Config
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		profileClient:   profileClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		cfg:             cfg,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Admission - это предварительная проверка по снапшоту занятых интервалов,
// а не гарантия: два конкурентных запроса могут оба увидеть слот свободным.
// Поэтому проверка и вставка выполняются в сериализуемой транзакции, а
// конфликт на constraint БД трактуется как ErrSlotUnavailable (повторяемая
// бизнес-ошибка "слот занят", не системный сбой)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitReservation: customer=%d, practitioner=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.PractitionerID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в бизнес-таймзоне
	now := uc.timeProvider.Now().In(uc.cfg.Location)

	// 3. Получаем мастера
	practitioner, err := uc.profileClient.GetPractitioner(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, profileClient.ErrPractitionerNotFound) {
			uc.logger.Warn("AdmitReservation: practitioner id=%d not found", req.PractitionerID)
			return nil, ErrPractitionerNotFound
		}
		uc.logger.Error("AdmitReservation: failed to get practitioner id=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: failed to get practitioner: %v", ErrInternal, err)
	}
	if !practitioner.IsActive {
		uc.logger.Warn("AdmitReservation: practitioner id=%d is not active", req.PractitionerID)
		return nil, ErrPractitionerNotFound
	}

	// 4. Получаем услугу и проверяем, что мастер ее оказывает
	service, err := uc.profileClient.GetService(ctx, practitioner.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, profileClient.ErrServiceNotFound) {
			uc.logger.Warn("AdmitReservation: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("AdmitReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if err := validateServiceProvided(service, req.PractitionerID); err != nil {
		uc.logger.Warn("AdmitReservation: service id=%d is not provided by practitioner id=%d",
			req.ServiceID, req.PractitionerID)
		return nil, err
	}

	// 5. Проверяем дату и минимальное время до начала
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("AdmitReservation: date validation failed: %v", err)
		return nil, err
	}

	requested, err := requestedInterval(req, service.DurationMinutes, uc.cfg.Location)
	if err != nil {
		uc.logger.Warn("AdmitReservation: failed to build requested interval: %v", err)
		return nil, err
	}

	if err := validateNotice(requested.Start, now, uc.cfg.MinNoticeMinutes); err != nil {
		uc.logger.Warn("AdmitReservation: notice validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 6. Выполняем admission и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем недельный шаблон и переопределение на дату
		week, err := uc.scheduleRepo.GetWeekSchedule(txCtx, req.PractitionerID)
		if err != nil {
			uc.logger.Error("AdmitReservation: failed to get week schedule: %v", err)
			return fmt.Errorf("%w: failed to get week schedule: %v", ErrInternal, err)
		}

		overrides, err := uc.scheduleRepo.GetOverrides(txCtx, req.PractitionerID, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("AdmitReservation: failed to get overrides: %v", err)
			return fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
		}

		// 6.2. Получаем снапшот активных бронирований мастера на дату
		filter := domain.SubjectReservationsFilter{
			SalonID:         practitioner.SalonID,
			PractitionerID:  ptr.Ptr(req.PractitionerID),
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		reservations, err := uc.reservationRepo.GetBySubjectWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("AdmitReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 6.3. Решение о допуске: валидный интервал, внутри свободного времени,
		// точное совпадение с длительностью услуги
		admission := domain.AdmissionRequest{
			Requested: requested,
			Availability: domain.AvailabilityQuery{
				Week:      week,
				Overrides: overrides,
				Booked:    domain.ActiveIntervals(reservations),
				Location:  uc.cfg.Location,
			},
			RequiredDuration: time.Duration(service.DurationMinutes) * time.Minute,
		}

		if err := domain.AdmitReservation(admission); err != nil {
			switch {
			case errors.Is(err, domain.ErrSlotUnavailable):
				uc.logger.Warn("AdmitReservation: slot %s-%s not available for practitioner=%d",
					req.StartTime, requested.End.Format(domain.TimeFormat), req.PractitionerID)
				return ErrSlotUnavailable
			case errors.Is(err, domain.ErrDurationMismatch):
				uc.logger.Warn("AdmitReservation: duration mismatch: %v", err)
				return ErrDurationMismatch
			case errors.Is(err, domain.ErrInvalidInterval):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			default:
				return fmt.Errorf("%w: admission failed: %v", ErrInternal, err)
			}
		}

		// 6.4. Создаем бронирование с денормализацией данных услуги
		reservation := &domain.Reservation{
			CustomerID:     req.CustomerID,
			SalonID:        practitioner.SalonID,
			PractitionerID: req.PractitionerID,
			ServiceID:      req.ServiceID,
			StartsAt:       requested.Start,
			EndsAt:         requested.End,
			Status:         domain.StatusConfirmed,
			ServiceName:    service.Name,
			ServicePrice:   servicePrice(service),
			Notes:          req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Поздний конфликт на constraint - тот же "слот занят"
			if errors.Is(err, reservationRepo.ErrTimeConflict) {
				uc.logger.Warn("AdmitReservation: write-time conflict for practitioner=%d at %s",
					req.PractitionerID, requested.Start.Format(time.RFC3339))
				return ErrSlotUnavailable
			}
			uc.logger.Error("AdmitReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdmitReservation: successfully created reservation id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		CustomerID:     result.CustomerID,
		SalonID:        result.SalonID,
		PractitionerID: result.PractitionerID,
		ServiceID:      result.ServiceID,
		StartsAt:       result.StartsAt,
		EndsAt:         result.EndsAt,
		Status:         string(result.Status),
		ServiceName:    result.ServiceName,
		ServicePrice:   result.ServicePrice,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
