package get_customer_reservations

import (
	"context"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/reservations/models"
)

type ReservationService interface {
	GetCustomerReservations(ctx context.Context, req *models.GetCustomerReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
