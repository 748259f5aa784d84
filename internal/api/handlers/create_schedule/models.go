package create_schedule

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	createSchedule "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/create_schedule"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	ProgramID    int64  `json:"programId"`
	BranchID     int64  `json:"branchId"`
	CourtID      int64  `json:"courtId"`
	Date         string `json:"date"`      // "2025-06-01"
	StartTime    string `json:"startTime"` // "09:00"
	EndTime      string `json:"endTime"`   // "10:00"
	TrainerID    *int64 `json:"trainerId,omitempty"`
	AgeBracketID *int64 `json:"ageBracketId,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID           int64  `json:"id"`
	ProgramID    int64  `json:"programId"`
	BranchID     int64  `json:"branchId"`
	CourtID      int64  `json:"courtId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	TrainerID    *int64 `json:"trainerId,omitempty"`
	AgeBracketID *int64 `json:"ageBracketId,omitempty"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleRequest) ToUseCaseRequest() (*createSchedule.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим времена начала и конца
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createSchedule.Request{
		ProgramID:    r.ProgramID,
		BranchID:     r.BranchID,
		CourtID:      r.CourtID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		TrainerID:    r.TrainerID,
		AgeBracketID: r.AgeBracketID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ID:           resp.ID,
		ProgramID:    resp.ProgramID,
		BranchID:     resp.BranchID,
		CourtID:      resp.CourtID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		TrainerID:    resp.TrainerID,
		AgeBracketID: resp.AgeBracketID,
		IsActive:     resp.IsActive,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
