package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/middleware"
	updateSchedule "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/update_schedule"
)

const (
	msgInvalidPractitionerID = "некорректный ID мастера"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgPractitionerNotFound  = "мастер не найден"
	msgForbidden             = "доступ запрещен"
	msgIncompleteWeek        = "недельный шаблон должен содержать каждый день недели ровно один раз"
	msgInvalidShift          = "некорректная смена"
	msgOverlappingShifts     = "смены пересекаются"
	msgInvalidOverride       = "некорректное переопределение даты"
	msgInvalidInput          = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/practitioners/{practitionerId}/schedule
// Доступно мастеру для своего расписания и менеджерам салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем practitionerId из URL
	vars := mux.Vars(r)
	practitionerIDStr := vars["practitionerId"]

	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /practitioners/{id}/schedule - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /practitioners/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /practitioners/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, practitionerID)
	if err != nil {
		h.logger.Warn("PUT /practitioners/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrPractitionerNotFound):
			h.logger.Warn("PUT /practitioners/{id}/schedule - Practitioner not found: practitioner_id=%d", practitionerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, updateSchedule.ErrAccessDenied):
			h.logger.Warn("PUT /practitioners/{id}/schedule - Access denied: practitioner_id=%d, user_id=%d",
				practitionerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateSchedule.ErrIncompleteWeek):
			h.logger.Warn("PUT /practitioners/{id}/schedule - Incomplete week: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgIncompleteWeek)

		case errors.Is(err, updateSchedule.ErrInvalidShift):
			h.logger.Warn("PUT /practitioners/{id}/schedule - Invalid shift: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidShift)

		case errors.Is(err, updateSchedule.ErrOverlappingShifts):
			h.logger.Warn("PUT /practitioners/{id}/schedule - Overlapping shifts: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondBadRequest(w, msgOverlappingShifts)

		case errors.Is(err, updateSchedule.ErrInvalidOverride):
			h.logger.Warn("PUT /practitioners/{id}/schedule - Invalid override: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidOverride)

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /practitioners/{id}/schedule - Invalid input: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /practitioners/{id}/schedule - Failed to update schedule: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /practitioners/{id}/schedule - Schedule updated successfully: practitioner_id=%d, user_id=%d",
		practitionerID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
