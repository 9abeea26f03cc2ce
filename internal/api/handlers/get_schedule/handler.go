package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/schedule"
)

const (
	msgInvalidPractitionerID = "некорректный ID мастера"
	msgInvalidParams         = "некорректные параметры запроса, ожидается дата YYYY-MM-DD"
	msgInvalidPeriod         = "некорректный период"
	msgPractitionerNotFound  = "мастер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/practitioners/{practitionerId}/schedule
// Query params: from, to (опционально, YYYY-MM-DD) - окно переопределений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем practitionerId из URL
	vars := mux.Vars(r)
	practitionerIDStr := vars["practitionerId"]

	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/schedule - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(practitionerID, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/schedule - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем расписание
	result, err := h.service.GetSchedule(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrPractitionerNotFound):
			h.logger.Warn("GET /practitioners/{id}/schedule - Practitioner not found: practitioner_id=%d", practitionerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, schedule.ErrInvalidPeriod):
			h.logger.Warn("GET /practitioners/{id}/schedule - Invalid period: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /practitioners/{id}/schedule - Failed to get schedule: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /practitioners/{id}/schedule - Schedule retrieved successfully: practitioner_id=%d",
		practitionerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
