package reservations

import (
	"context"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetBySubjectWithFilter(ctx context.Context, filter domain.SubjectReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*profileservice.Salon, error)
	GetPractitioner(ctx context.Context, practitionerID int64) (*profileservice.Practitioner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
