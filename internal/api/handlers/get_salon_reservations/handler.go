package get_salon_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/middleware"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/reservations"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры запроса"
	msgInvalidPeriod  = "некорректный период"
	msgSalonNotFound  = "салон не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/reservations
// Query params: practitionerId, status, startDate, endDate, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/reservations - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	practitionerIDStr := r.URL.Query().Get("practitionerId")
	statusStr := r.URL.Query().Get("status")
	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	includeInactiveStr := r.URL.Query().Get("includeInactive")

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(salonID, userID, practitionerIDStr, statusStr,
		startDateStr, endDateStr, includeInactiveStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования салона (сервис сам проверит права менеджера)
	result, err := h.service.GetSalonReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/reservations - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /salons/{id}/reservations - Access denied: salon_id=%d, user_id=%d",
				salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidPeriod):
			h.logger.Warn("GET /salons/{id}/reservations - Invalid period: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/reservations - Invalid parameters: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /salons/{id}/reservations - Failed to get reservations: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/reservations - Reservations retrieved successfully: salon_id=%d, count=%d",
		salonID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
