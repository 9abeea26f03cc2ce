package create_reservation

import (
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	admitReservation "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/admit_reservation"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	PractitionerID int64   `json:"practitionerId"`
	ServiceID      int64   `json:"serviceId"`
	Date           string  `json:"date"`              // "2026-03-15"
	StartTime      string  `json:"startTime"`         // "10:00"
	EndTime        *string `json:"endTime,omitempty"` // Опционально; по умолчанию вычисляется из длительности услуги
	Notes          *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64   `json:"id"`
	CustomerID     int64   `json:"customerId"`
	SalonID        int64   `json:"salonId"`
	PractitionerID int64   `json:"practitionerId"`
	ServiceID      int64   `json:"serviceId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	ServiceName    string  `json:"serviceName"`
	ServicePrice   float64 `json:"servicePrice"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// customerID берётся из контекста аутентификации, не из тела запроса
func (r *CreateReservationRequest) ToUseCaseRequest(customerID int64) (*admitReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &admitReservation.Request{
		CustomerID:     customerID,
		PractitionerID: r.PractitionerID,
		ServiceID:      r.ServiceID,
		Date:           date,
		StartTime:      startTime,
		Notes:          r.Notes,
	}

	// Парсим время конца если указано
	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *admitReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		CustomerID:     resp.CustomerID,
		SalonID:        resp.SalonID,
		PractitionerID: resp.PractitionerID,
		ServiceID:      resp.ServiceID,
		Date:           resp.StartsAt.Format(domain.DateFormat),
		StartTime:      resp.StartsAt.Format(domain.TimeFormat),
		EndTime:        resp.EndsAt.Format(domain.TimeFormat),
		Status:         resp.Status,
		ServiceName:    resp.ServiceName,
		ServicePrice:   resp.ServicePrice,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
