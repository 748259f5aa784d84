package update_schedule

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	updateSchedule "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/update_schedule"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// UpdateScheduleRequest HTTP request model
// Все поля опциональны: отсутствующее поле сохраняет прежнее значение
type UpdateScheduleRequest struct {
	ProgramID    *int64  `json:"programId,omitempty"`
	BranchID     *int64  `json:"branchId,omitempty"`
	CourtID      *int64  `json:"courtId,omitempty"`
	Date         *string `json:"date,omitempty"`      // "2025-06-01"
	StartTime    *string `json:"startTime,omitempty"` // "09:00"
	EndTime      *string `json:"endTime,omitempty"`   // "10:00"
	TrainerID    *int64  `json:"trainerId,omitempty"`
	AgeBracketID *int64  `json:"ageBracketId,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// ScheduleDetailsResponse HTTP response model с справочными атрибутами
type ScheduleDetailsResponse struct {
	ID           int64   `json:"id"`
	ProgramID    int64   `json:"programId"`
	BranchID     int64   `json:"branchId"`
	CourtID      int64   `json:"courtId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	TrainerID    *int64  `json:"trainerId,omitempty"`
	AgeBracketID *int64  `json:"ageBracketId,omitempty"`
	IsActive     bool    `json:"isActive"`
	ProgramName  string  `json:"programName"`
	BranchName   string  `json:"branchName"`
	CourtName    string  `json:"courtName"`
	TrainerName  *string `json:"trainerName,omitempty"`
	AgeMin       *int    `json:"ageMin,omitempty"`
	AgeMax       *int    `json:"ageMax,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest(id int64) (*updateSchedule.Request, error) {
	req := &updateSchedule.Request{
		ID:           id,
		ProgramID:    r.ProgramID,
		BranchID:     r.BranchID,
		CourtID:      r.CourtID,
		TrainerID:    r.TrainerID,
		AgeBracketID: r.AgeBracketID,
		IsActive:     r.IsActive,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *ScheduleDetailsResponse {
	return &ScheduleDetailsResponse{
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
		ProgramName:  resp.ProgramName,
		BranchName:   resp.BranchName,
		CourtName:    resp.CourtName,
		TrainerName:  resp.TrainerName,
		AgeMin:       resp.AgeMin,
		AgeMax:       resp.AgeMax,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
