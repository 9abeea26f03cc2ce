package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	profileClient "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/schedule/models"
)

// defaultOverridesWindowDays окно переопределений по умолчанию, если границы не заданы
const defaultOverridesWindowDays = 31

// Service сервис для чтения расписаний мастеров
type Service struct {
	scheduleRepo  ScheduleRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// GetSchedule получает расписание мастера: недельный шаблон и переопределения
// Публичный метод - доступен всем
// Если окно переопределений не задано, возвращает переопределения на ближайший месяц
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for practitioner=%d", req.PractitionerID)

	// 1. Проверяем существование мастера
	if _, err := s.profileClient.GetPractitioner(ctx, req.PractitionerID); err != nil {
		if errors.Is(err, profileClient.ErrPractitionerNotFound) {
			s.logger.Warn("GetSchedule: practitioner id=%d not found", req.PractitionerID)
			return nil, ErrPractitionerNotFound
		}
		s.logger.Error("GetSchedule: failed to get practitioner id=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: GetSchedule - failed to get practitioner: %v", ErrInternal, err)
	}

	// 2. Границы окна должны идти по порядку
	// Обе даты включительны, поэтому сравниваем с эксклюзивным концом (конец + 1 день)
	var toExclusive *time.Time
	if req.To != nil {
		e := req.To.AddDate(0, 0, 1)
		toExclusive = &e
	}
	if err := domain.ValidateOrdered(req.From, toExclusive); err != nil {
		s.logger.Warn("GetSchedule: invalid period for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	from := time.Now()
	if req.From != nil {
		from = *req.From
	}
	to := from.AddDate(0, 0, defaultOverridesWindowDays)
	if req.To != nil {
		to = *req.To
	}

	// 3. Получаем недельный шаблон
	week, err := s.scheduleRepo.GetWeekSchedule(ctx, req.PractitionerID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	// 4. Получаем переопределения в запрошенном окне
	overrides, err := s.scheduleRepo.GetOverrides(ctx, req.PractitionerID, from, to)
	if err != nil {
		s.logger.Error("GetSchedule: failed to fetch overrides for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	schedule := &domain.SubjectSchedule{
		PractitionerID: req.PractitionerID,
		Week:           week,
		Overrides:      overrides,
	}

	s.logger.Info("GetSchedule: successfully fetched schedule for practitioner=%d, overrides=%d",
		req.PractitionerID, len(overrides))
	return models.FromDomainSchedule(schedule), nil
}
