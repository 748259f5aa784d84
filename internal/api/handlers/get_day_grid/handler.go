package get_day_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_day_grid"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
	msgInvalidDate  = "дата должна быть в формате YYYY-MM-DD"
)

type Handler struct {
	useCase BuildDayGridUseCase
	logger  Logger
}

func NewHandler(useCase BuildDayGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule-grid/day
// Query params: ageBracketId, courtId, date — обязательны; branchId опционален
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /schedule-grid/day - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, build_day_grid.ErrInvalidDate):
			h.logger.Warn("GET /schedule-grid/day - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, build_day_grid.ErrInvalidInput):
			h.logger.Warn("GET /schedule-grid/day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /schedule-grid/day - Failed to build day grid: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule-grid/day - Day grid built successfully: rows=%d", len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
