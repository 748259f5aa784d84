package get_schedule_grid

import (
	"context"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_grid"
)

type BuildGridUseCase interface {
	Execute(ctx context.Context, req *build_grid.Request) (*build_grid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
