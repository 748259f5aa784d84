package build_day_grid

import (
	"context"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleDetails, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetActive(ctx context.Context) ([]*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
