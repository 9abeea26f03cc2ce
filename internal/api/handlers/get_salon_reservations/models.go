package get_salon_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	salonID int64,
	userID int64,
	practitionerIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.GetSalonReservationsRequest, error) {
	req := &models.GetSalonReservationsRequest{
		UserID:          userID,
		SalonID:         salonID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим practitionerId если указан
	if practitionerIDStr != "" {
		practitionerID, err := strconv.ParseInt(practitionerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.PractitionerID = &practitionerID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим границы периода если указаны
	// Одиночный startDate трактуется как запрос на одну дату
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
		req.EndDate = &startDate
	}
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
