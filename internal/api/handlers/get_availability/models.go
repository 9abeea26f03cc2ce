package get_availability

import (
	"strconv"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	computeAvailability "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/compute_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PractitionerID     int64      `json:"practitionerId"`
	ServiceID          int64      `json:"serviceId"`
	From               string     `json:"from"`
	To                 string     `json:"to"`
	GranularityMinutes int        `json:"granularityMinutes"`
	Days               []DaySlots `json:"days"`
}

// DaySlots слоты одного календарного дня
type DaySlots struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(practitionerID, serviceID int64, fromStr, toStr, granularityStr string) (*computeAvailability.Request, error) {
	// Парсим границы диапазона дат
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	req := &computeAvailability.Request{
		PractitionerID: practitionerID,
		ServiceID:      serviceID,
		From:           from,
		To:             to,
	}

	// Парсим granularityMinutes если указан
	if granularityStr != "" {
		granularity, err := strconv.Atoi(granularityStr)
		if err != nil {
			return nil, err
		}
		req.GranularityMinutes = &granularity
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeAvailability.Response) *AvailabilityResponse {
	days := make([]DaySlots, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]AvailableSlot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = AvailableSlot{
				StartTime:       slot.StartTime.String(),
				EndTime:         slot.EndTime.String(),
				DurationMinutes: slot.DurationMinutes,
			}
		}
		days[i] = DaySlots{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &AvailabilityResponse{
		PractitionerID:     resp.PractitionerID,
		ServiceID:          resp.ServiceID,
		From:               resp.From.Format(domain.DateFormat),
		To:                 resp.To.Format(domain.DateFormat),
		GranularityMinutes: resp.GranularityMinutes,
		Days:               days,
	}
}
