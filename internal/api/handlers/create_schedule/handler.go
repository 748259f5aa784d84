package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers"
	createSchedule "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные занятия"
	msgDuplicateSchedule  = "занятие с этой программой на этом корте в этот день уже существует"
	msgTimeConflict       = "время занятия пересекается с существующим занятием"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSchedule.ErrDuplicateSchedule):
			h.logger.Warn("POST /schedules - Duplicate schedule: program_id=%d, court_id=%d, date=%s",
				req.ProgramID, req.CourtID, req.Date)
			handlers.RespondBadRequest(w, msgDuplicateSchedule)

		case errors.Is(err, createSchedule.ErrTimeConflict):
			h.logger.Warn("POST /schedules - Time conflict: court_id=%d, date=%s, time=%s-%s",
				req.CourtID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgTimeConflict)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: court_id=%d, date=%s, error=%v",
				req.CourtID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /schedules - Schedule created successfully: schedule_id=%d, court_id=%d, date=%s",
		result.ID, req.CourtID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
