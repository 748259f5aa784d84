package update_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_schedule: invalid input data")

	// ErrScheduleNotFound возвращается, когда занятие не найдено
	ErrScheduleNotFound = errors.New("update_schedule: schedule not found")

	// ErrDuplicateSchedule возвращается, когда конфликтующее занятие полностью
	// повторяет патч (те же начало, конец и тренер)
	ErrDuplicateSchedule = errors.New("update_schedule: identical schedule already exists")

	// ErrTimeConflict возвращается при пересечении с другим занятием
	// на том же корте в тот же день
	ErrTimeConflict = errors.New("update_schedule: time conflict with an existing schedule")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_schedule: internal error")
)
