package update_schedule

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда мастер не найден
	ErrPractitionerNotFound = errors.New("update_schedule: practitioner not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером салона
	ErrAccessDenied = errors.New("update_schedule: access denied")

	// ErrIncompleteWeek возвращается, когда недельный шаблон пропускает или дублирует день недели
	ErrIncompleteWeek = errors.New("update_schedule: week template must contain each weekday exactly once")

	// ErrInvalidShift возвращается, когда смена пустая или инвертированная
	ErrInvalidShift = errors.New("update_schedule: invalid shift range")

	// ErrOverlappingShifts возвращается, когда смены одного дня пересекаются
	ErrOverlappingShifts = errors.New("update_schedule: shifts overlap")

	// ErrInvalidOverride возвращается при некорректном переопределении даты
	ErrInvalidOverride = errors.New("update_schedule: invalid day override")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_schedule: internal error")
)
