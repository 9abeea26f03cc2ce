package compute_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	profileClient "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/ptr"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// UseCase use case для расчета доступных слотов мастера
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	profileClient   ProfileServiceClient
	timeProvider    TimeProvider
	cfg             Config
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		profileClient:   profileClient,
		timeProvider:    &RealTimeProvider{},
		cfg:             cfg,
		logger:          logger,
	}
}

// Execute выполняет use case расчета доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeAvailability: customer=%d, practitioner=%d, service=%d, from=%s, to=%s",
		req.CustomerID, req.PractitionerID, req.ServiceID,
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.cfg); err != nil {
		uc.logger.Warn("ComputeAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().In(uc.cfg.Location)

	// 3. Получаем мастера
	practitioner, err := uc.profileClient.GetPractitioner(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, profileClient.ErrPractitionerNotFound) {
			uc.logger.Warn("ComputeAvailability: practitioner id=%d not found", req.PractitionerID)
			return nil, ErrPractitionerNotFound
		}
		uc.logger.Error("ComputeAvailability: failed to get practitioner id=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: failed to get practitioner: %v", ErrInternal, err)
	}
	if !practitioner.IsActive {
		uc.logger.Warn("ComputeAvailability: practitioner id=%d is not active", req.PractitionerID)
		return nil, ErrPractitionerNotFound
	}

	// 4. Получаем услугу и проверяем, что мастер ее оказывает
	service, err := uc.profileClient.GetService(ctx, practitioner.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, profileClient.ErrServiceNotFound) {
			uc.logger.Warn("ComputeAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ComputeAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if err := validateServiceProvided(service, req.PractitionerID); err != nil {
		uc.logger.Warn("ComputeAvailability: service id=%d is not provided by practitioner id=%d",
			req.ServiceID, req.PractitionerID)
		return nil, err
	}

	// 5. Определяем шаг слотов: явный параметр, иначе длительность услуги, иначе дефолт
	granularity := uc.cfg.DefaultGranularityMinutes
	if service.DurationMinutes > 0 {
		granularity = service.DurationMinutes
	}
	if req.GranularityMinutes != nil {
		granularity = *req.GranularityMinutes
	}

	// 6. Отсекаем прошедшие дни: слоты в прошлом не предлагаем
	from := dayStart(req.From, uc.cfg.Location)
	to := dayStart(req.To, uc.cfg.Location)
	today := dayStart(now, uc.cfg.Location)
	if from.Before(today) {
		from = today
	}
	if to.Before(today) {
		uc.logger.Info("ComputeAvailability: requested range is entirely in the past")
		return uc.emptyResponse(req, granularity), nil
	}

	// 7. Получаем недельный шаблон и переопределения дат
	week, err := uc.scheduleRepo.GetWeekSchedule(ctx, req.PractitionerID)
	if err != nil {
		uc.logger.Error("ComputeAvailability: failed to get week schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get week schedule: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.GetOverrides(ctx, req.PractitionerID, from, to)
	if err != nil {
		uc.logger.Error("ComputeAvailability: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	// 8. Получаем снапшот активных бронирований мастера за период
	filter := domain.SubjectReservationsFilter{
		SalonID:         practitioner.SalonID,
		PractitionerID:  ptr.Ptr(req.PractitionerID),
		StartDate:       &from,
		EndDate:         &to,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetBySubjectWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ComputeAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 9. Вычисляем доступные слоты
	query := domain.AvailabilityQuery{
		From:         from,
		To:           to,
		Week:         week,
		Overrides:    overrides,
		Booked:       domain.ActiveIntervals(reservations),
		SlotDuration: time.Duration(granularity) * time.Minute,
		Location:     uc.cfg.Location,
	}

	// 10. Для сегодняшнего дня дополнительно отсекаем слоты, начинающиеся
	// раньше now + MinNoticeMinutes
	minStart := now.Add(time.Duration(uc.cfg.MinNoticeMinutes) * time.Minute)

	response := uc.emptyResponse(req, granularity)

	total := 0
	for slot := range domain.AvailableSlots(query) {
		if sameDay(slot.Date, today) && slot.Interval.Start.Before(minStart) {
			continue
		}

		last := len(response.Days) - 1
		if last < 0 || !sameDay(response.Days[last].Date, slot.Date) {
			response.Days = append(response.Days, DaySlots{Date: slot.Date})
			last = len(response.Days) - 1
		}

		response.Days[last].Slots = append(response.Days[last].Slots, Slot{
			StartTime:       types.NewTimeString(slot.Interval.Start),
			EndTime:         types.NewTimeString(slot.Interval.End),
			DurationMinutes: int(slot.Interval.Duration() / time.Minute),
		})
		total++
	}

	uc.logger.Info("ComputeAvailability: generated %d slots in %d days for practitioner=%d, service=%d",
		total, len(response.Days), req.PractitionerID, req.ServiceID)

	return response, nil
}

func (uc *UseCase) emptyResponse(req *Request, granularity int) *Response {
	return &Response{
		PractitionerID:     req.PractitionerID,
		ServiceID:          req.ServiceID,
		From:               req.From,
		To:                 req.To,
		GranularityMinutes: granularity,
		Days:               []DaySlots{},
	}
}

func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
