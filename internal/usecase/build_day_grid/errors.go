package build_day_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("build_day_grid: invalid input data")

	// ErrInvalidDate возвращается, когда дата не является строгим литералом YYYY-MM-DD
	ErrInvalidDate = errors.New("build_day_grid: date must be a YYYY-MM-DD literal")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_day_grid: internal error")
)
