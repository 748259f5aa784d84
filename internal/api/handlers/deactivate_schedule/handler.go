package deactivate_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers"
	schedulesService "github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "некорректный ID занятия"
	msgScheduleNotFound  = "занятие не найдено"
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

// Handle PATCH /api/v1/schedules/{scheduleId}/deactivate
// Повторная деактивация — идемпотентный no-op со статусом "already_inactive"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /schedules/{id}/deactivate - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	result, err := h.service.Deactivate(r.Context(), scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrScheduleNotFound):
			h.logger.Warn("PATCH /schedules/{id}/deactivate - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("PATCH /schedules/{id}/deactivate - Failed to deactivate schedule: schedule_id=%d, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedules/{id}/deactivate - Schedule deactivated: schedule_id=%d, status=%s",
		scheduleID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
