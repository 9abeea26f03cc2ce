package profileservice

// Salon модель салона из ProfileService
type Salon struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ManagerIDs      []int64 `json:"manager_ids"`
	PractitionerIDs []int64 `json:"practitioner_ids"`
}

// Practitioner модель мастера из ProfileService
type Practitioner struct {
	ID       int64  `json:"id"`
	SalonID  int64  `json:"salon_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// Service модель услуги из ProfileService
type Service struct {
	ID              int64    `json:"id"`
	SalonID         int64    `json:"salon_id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	PractitionerIDs []int64  `json:"practitioner_ids"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
