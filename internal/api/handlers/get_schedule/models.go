package get_schedule

import (
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/schedule/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(practitionerID int64, fromStr, toStr string) (*models.GetScheduleRequest, error) {
	req := &models.GetScheduleRequest{PractitionerID: practitionerID}

	// Парсим границы окна переопределений если указаны
	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}
	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}
