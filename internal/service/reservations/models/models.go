package models

import (
	"errors"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetCustomerReservationsRequest запрос на получение бронирований клиента
type GetCustomerReservationsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetSalonReservationsRequest запрос на получение бронирований салона
type GetSalonReservationsRequest struct {
	UserID          int64      `json:"userId"`
	SalonID         int64      `json:"salonId"`
	PractitionerID  *int64     `json:"practitionerId,omitempty"`  // Фильтр по мастеру (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSalonReservationsRequest) ToDomainFilter() (domain.SubjectReservationsFilter, error) {
	filter := domain.SubjectReservationsFilter{
		SalonID:         r.SalonID,
		PractitionerID:  r.PractitionerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	SalonID            int64   `json:"salonId"`
	PractitionerID     int64   `json:"practitionerId"`
	ServiceID          int64   `json:"serviceId"`
	Date               string  `json:"date"`      // "2026-03-15"
	StartTime          string  `json:"startTime"` // "10:00"
	EndTime            string  `json:"endTime"`   // "11:00"
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		SalonID:            r.SalonID,
		PractitionerID:     r.PractitionerID,
		ServiceID:          r.ServiceID,
		Date:               r.StartsAt.Format(domain.DateFormat),
		StartTime:          r.StartsAt.Format(domain.TimeFormat),
		EndTime:            r.EndsAt.Format(domain.TimeFormat),
		Status:             string(r.Status),
		ServiceName:        r.ServiceName,
		ServicePrice:       r.ServicePrice,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.Format(time.RFC3339),
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, FromDomainReservation(r))
	}

	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledBySalon,
		domain.StatusNoShow:
		return domain.ReservationStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
