package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers"
	updateSchedule "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/update_schedule"
)

const (
	msgInvalidScheduleID  = "некорректный ID занятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные занятия"
	msgScheduleNotFound   = "занятие не найдено"
	msgDuplicateSchedule  = "идентичное занятие уже существует"
	msgTimeConflict       = "время занятия пересекается с существующим занятием"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(scheduleID)
	if err != nil {
		h.logger.Warn("PUT /schedules/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedules/{id} - Invalid input: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateSchedule.ErrScheduleNotFound):
			h.logger.Warn("PUT /schedules/{id} - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, updateSchedule.ErrDuplicateSchedule):
			h.logger.Warn("PUT /schedules/{id} - Duplicate schedule: schedule_id=%d", scheduleID)
			handlers.RespondBadRequest(w, msgDuplicateSchedule)

		case errors.Is(err, updateSchedule.ErrTimeConflict):
			h.logger.Warn("PUT /schedules/{id} - Time conflict: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgTimeConflict)

		default:
			h.logger.Error("PUT /schedules/{id} - Failed to update schedule: schedule_id=%d, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /schedules/{id} - Schedule updated successfully: schedule_id=%d", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
