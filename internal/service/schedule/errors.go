package schedule

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда мастер не найден
	ErrPractitionerNotFound = errors.New("practitioner not found")

	// ErrInvalidPeriod возвращается при некорректном окне переопределений
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
