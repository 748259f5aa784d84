package deactivate_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers"
	schedulesService "github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules"
)

const (
	msgInvalidBody = "некорректное тело запроса"
	msgEmptyIDs    = "список ID занятий пуст"
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

// Handle POST /api/v1/schedules/deactivate
// Каждый ID обрабатывается независимо: статусы per-id в ответе,
// отсутствующая строка не прерывает обработку остальных
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeactivateSchedulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/deactivate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.DeactivateMany(r.Context(), req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrInvalidInput):
			h.logger.Warn("POST /schedules/deactivate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmptyIDs)

		default:
			h.logger.Error("POST /schedules/deactivate - Failed to deactivate schedules: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/deactivate - Processed %d schedules", len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, result)
}
