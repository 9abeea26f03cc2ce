package compute_availability

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда мастер не найден или неактивен
	ErrPractitionerNotFound = errors.New("compute_availability: practitioner not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("compute_availability: service not found")

	// ErrServiceNotProvided возвращается, когда мастер не оказывает указанную услугу
	ErrServiceNotProvided = errors.New("compute_availability: service is not provided by this practitioner")

	// ErrInvalidRange возвращается, когда конец диапазона дат раньше начала
	ErrInvalidRange = errors.New("compute_availability: invalid date range")

	// ErrRangeTooLarge возвращается, когда диапазон дат превышает MaxRangeDays
	ErrRangeTooLarge = errors.New("compute_availability: date range is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("compute_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_availability: internal error")
)
