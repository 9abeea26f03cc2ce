package admit_reservation

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда мастер не найден или неактивен
	ErrPractitionerNotFound = errors.New("admit_reservation: practitioner not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("admit_reservation: service not found")

	// ErrServiceNotProvided возвращается, когда мастер не оказывает указанную услугу
	ErrServiceNotProvided = errors.New("admit_reservation: service is not provided by this practitioner")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("admit_reservation: invalid reservation date")

	// ErrTooLateToReserve возвращается, когда бронирование нарушает минимальное время до начала
	ErrTooLateToReserve = errors.New("admit_reservation: too late to reserve this slot")

	// ErrSlotUnavailable возвращается, когда запрошенное время не помещается в свободные интервалы
	// мастера (вне рабочих часов или пересекается с существующим бронированием).
	// Поздний конфликт на записи в БД классифицируется так же
	ErrSlotUnavailable = errors.New("admit_reservation: requested time is not available")

	// ErrDurationMismatch возвращается, когда явное время конца не совпадает с длительностью услуги
	ErrDurationMismatch = errors.New("admit_reservation: interval does not match service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admit_reservation: internal error")
)
