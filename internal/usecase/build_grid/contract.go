package build_grid

import (
	"context"
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleDetails, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	// GetActive возвращает ростер активных кортов, отсортированный по имени
	GetActive(ctx context.Context) ([]*domain.Court, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Без явной даты диапазон выводится из "сейчас", поэтому построение сетки
// зависит от часов — провайдер делает эту зависимость инжектируемой
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
