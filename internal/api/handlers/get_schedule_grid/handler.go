package get_schedule_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_grid"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	useCase BuildGridUseCase
	logger  Logger
}

func NewHandler(useCase BuildGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule-grid
// Query params: ageBracketId, branchId, courtId (id или "All"), pickDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /schedule-grid - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, build_grid.ErrInvalidInput):
			h.logger.Warn("GET /schedule-grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /schedule-grid - Failed to build grid: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule-grid - Grid built successfully: rows=%d", len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
