package deactivate_schedules

import (
	"context"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules/models"
)

type SchedulesService interface {
	DeactivateMany(ctx context.Context, ids []int64) (*models.DeactivateManyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
