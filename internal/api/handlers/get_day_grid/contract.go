package get_day_grid

import (
	"context"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_day_grid"
)

type BuildDayGridUseCase interface {
	Execute(ctx context.Context, req *build_day_grid.Request) (*build_day_grid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
