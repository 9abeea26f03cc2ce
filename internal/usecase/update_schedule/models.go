package update_schedule

import (
	"time"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
)

// Request модель запроса на полную замену расписания мастера
// Days должны содержать ровно 7 дней недели; Overrides заменяют
// переопределения дат целиком (частичного слияния нет)
type Request struct {
	UserID         int64 // ID пользователя (менеджер салона)
	PractitionerID int64
	Days           []domain.DayRule
	Overrides      []domain.DayOverride
}

// Response модель ответа с принятым расписанием
type Response struct {
	PractitionerID int64
	Days           []domain.DayRule
	Overrides      []domain.DayOverride
	UpdatedAt      time.Time
}
