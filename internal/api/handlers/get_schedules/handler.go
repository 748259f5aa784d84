package get_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers"
	schedulesService "github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
// Query params: startDate, endDate (required, YYYY-MM-DD);
// branchId, courtId, ageBracketId (optional, id или "All"); includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /schedules - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrInvalidInput):
			h.logger.Warn("GET /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /schedules - Failed to list schedules: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules - Schedules retrieved successfully: count=%d", len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
