package admit_reservation

import (
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// Config параметры планирования, прокидываются из конфигурации сервиса
type Config struct {
	Location         *time.Location
	MinNoticeMinutes int
}

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID     int64            // ID клиента
	PractitionerID int64            // ID мастера
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала (например, "10:00")
	EndTime        *types.TimeString // Время конца; nil - вычисляется из длительности услуги
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	CustomerID     int64
	SalonID        int64
	PractitionerID int64
	ServiceID      int64
	StartsAt       time.Time
	EndsAt         time.Time
	Status         string

	// Денормализованные данные
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
