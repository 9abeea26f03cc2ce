package compute_availability

import (
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// Config параметры планирования, прокидываются из конфигурации сервиса
// Location - бизнес-таймзона расписаний, передается явно (без глобального состояния)
type Config struct {
	Location                  *time.Location
	MaxRangeDays              int
	MinNoticeMinutes          int
	DefaultGranularityMinutes int
}

// Request модель запроса на расчет доступных слотов
type Request struct {
	CustomerID         int64      // ID клиента (для логирования, не влияет на результат)
	PractitionerID     int64      // ID мастера
	ServiceID          int64      // ID услуги
	From               time.Time  // Начало диапазона дат (включительно)
	To                 time.Time  // Конец диапазона дат (включительно)
	GranularityMinutes *int       // Шаг слотов; nil - длительность услуги
}

// Response модель ответа со слотами по дням
type Response struct {
	PractitionerID     int64
	ServiceID          int64
	From               time.Time
	To                 time.Time
	GranularityMinutes int
	Days               []DaySlots
}

// DaySlots слоты одного календарного дня, слева направо
type DaySlots struct {
	Date  time.Time
	Slots []Slot
}

// Slot модель доступного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время конца слота
	DurationMinutes int              // Длительность слота в минутах
}
