package create_reservation

import (
	"errors"
	"net/http"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/middleware"
	admitReservation "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/admit_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotUnavailable      = "выбранное время недоступно"
	msgPractitionerNotFound = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceNotProvided   = "мастер не оказывает эту услугу"
	msgInvalidDate          = "некорректная дата бронирования"
	msgTooLateToReserve     = "слишком поздно для бронирования этого времени"
	msgDurationMismatch     = "интервал не соответствует длительности услуги"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase AdmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase AdmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, admitReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: customer_id=%d, practitioner_id=%d",
				customerID, req.PractitionerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, admitReservation.ErrPractitionerNotFound):
			h.logger.Warn("POST /reservations - Practitioner not found: practitioner_id=%d", req.PractitionerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, admitReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: practitioner_id=%d, service_id=%d",
				req.PractitionerID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, admitReservation.ErrServiceNotProvided):
			h.logger.Warn("POST /reservations - Service not provided: practitioner_id=%d, service_id=%d",
				req.PractitionerID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotProvided)

		case errors.Is(err, admitReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: customer_id=%d, practitioner_id=%d",
				customerID, req.PractitionerID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, admitReservation.ErrTooLateToReserve):
			h.logger.Warn("POST /reservations - Too late to reserve: customer_id=%d, practitioner_id=%d",
				customerID, req.PractitionerID)
			handlers.RespondBadRequest(w, msgTooLateToReserve)

		case errors.Is(err, admitReservation.ErrDurationMismatch):
			h.logger.Warn("POST /reservations - Duration mismatch: customer_id=%d, service_id=%d",
				customerID, req.ServiceID)
			handlers.RespondBadRequest(w, msgDurationMismatch)

		case errors.Is(err, admitReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: customer_id=%d, practitioner_id=%d, error=%v",
				customerID, req.PractitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, customer_id=%d, practitioner_id=%d",
		result.ID, customerID, req.PractitionerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
