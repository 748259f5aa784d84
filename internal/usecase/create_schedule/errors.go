package create_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrDuplicateSchedule возвращается, когда активное занятие с теми же
	// программой, кортом и датой уже существует (независимо от времени)
	ErrDuplicateSchedule = errors.New("create_schedule: schedule already exists for this program, court and date")

	// ErrTimeConflict возвращается при пересечении с существующим занятием
	// на том же корте в тот же день
	ErrTimeConflict = errors.New("create_schedule: time conflict with an existing schedule")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)
