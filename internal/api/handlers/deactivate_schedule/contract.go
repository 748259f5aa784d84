package deactivate_schedule

import (
	"context"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules/models"
)

type SchedulesService interface {
	Deactivate(ctx context.Context, id int64) (*models.DeactivateResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
