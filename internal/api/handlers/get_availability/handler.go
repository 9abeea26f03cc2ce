package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers"
	computeAvailability "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/compute_availability"
)

const (
	msgInvalidPractitionerID = "некорректный ID мастера"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgMissingServiceID      = "ID услуги обязателен"
	msgMissingFrom           = "параметр from обязателен"
	msgMissingTo             = "параметр to обязателен"
	msgInvalidParams         = "некорректные параметры запроса, ожидается дата YYYY-MM-DD"
	msgPractitionerNotFound  = "мастер не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgServiceNotProvided    = "мастер не оказывает эту услугу"
	msgInvalidRange          = "некорректный диапазон дат"
	msgRangeTooLarge         = "диапазон дат слишком большой"
)

type Handler struct {
	useCase ComputeAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ComputeAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/practitioners/{practitionerId}/available-slots
// Query params: serviceId (required), from (required, YYYY-MM-DD), to (required, YYYY-MM-DD),
// granularityMinutes (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем practitionerId из URL
	practitionerIDStr := vars["practitionerId"]
	practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/available-slots - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /practitioners/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем границы диапазона из query параметров
	fromStr := r.URL.Query().Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /practitioners/{id}/available-slots - Missing from")
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	toStr := r.URL.Query().Get("to")
	if toStr == "" {
		h.logger.Warn("GET /practitioners/{id}/available-slots - Missing to")
		handlers.RespondBadRequest(w, msgMissingTo)
		return
	}

	granularityStr := r.URL.Query().Get("granularityMinutes")

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(practitionerID, serviceID, fromStr, toStr, granularityStr)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, computeAvailability.ErrPractitionerNotFound):
			h.logger.Warn("GET /practitioners/{id}/available-slots - Practitioner not found: practitioner_id=%d", practitionerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, computeAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /practitioners/{id}/available-slots - Service not found: practitioner_id=%d, service_id=%d",
				practitionerID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, computeAvailability.ErrServiceNotProvided):
			h.logger.Warn("GET /practitioners/{id}/available-slots - Service not provided: practitioner_id=%d, service_id=%d",
				practitionerID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotProvided)

		case errors.Is(err, computeAvailability.ErrInvalidRange):
			h.logger.Warn("GET /practitioners/{id}/available-slots - Invalid range: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, computeAvailability.ErrRangeTooLarge):
			h.logger.Warn("GET /practitioners/{id}/available-slots - Range too large: practitioner_id=%d", practitionerID)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, computeAvailability.ErrInvalidInput):
			h.logger.Warn("GET /practitioners/{id}/available-slots - Invalid input: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /practitioners/{id}/available-slots - Failed to compute availability: practitioner_id=%d, service_id=%d, error=%v",
				practitionerID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /practitioners/{id}/available-slots - Availability computed successfully: practitioner_id=%d, service_id=%d, days_count=%d",
		practitionerID, serviceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
