package schedules

import (
	"context"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ScheduleDetails, error)
	GetWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleDetails, error)
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
