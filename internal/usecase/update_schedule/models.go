package update_schedule

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// Request модель запроса на обновление занятия
// Все поля, кроме ID, опциональны: nil означает "оставить прежнее значение"
type Request struct {
	ID           int64
	ProgramID    *int64
	BranchID     *int64
	CourtID      *int64
	Date         *time.Time
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	TrainerID    *int64
	AgeBracketID *int64

	// IsActive переключается независимо от временных полей
	IsActive *bool
}

// ToPatch конвертирует запрос в патч domain-уровня
func (r *Request) ToPatch() domain.SchedulePatch {
	return domain.SchedulePatch{
		ProgramID:    r.ProgramID,
		BranchID:     r.BranchID,
		CourtID:      r.CourtID,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		TrainerID:    r.TrainerID,
		AgeBracketID: r.AgeBracketID,
		IsActive:     r.IsActive,
	}
}

// Response модель ответа с обновлённым занятием и справочными атрибутами
type Response struct {
	ID           int64
	ProgramID    int64
	BranchID     int64
	CourtID      int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	TrainerID    *int64
	AgeBracketID *int64
	IsActive     bool

	// Справочные атрибуты для отображения
	ProgramName string
	BranchName  string
	CourtName   string
	TrainerName *string
	AgeMin      *int
	AgeMax      *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDetails конвертирует domain модель в response
func fromDetails(d *domain.ScheduleDetails) *Response {
	return &Response{
		ID:           d.ID,
		ProgramID:    d.ProgramID,
		BranchID:     d.BranchID,
		CourtID:      d.CourtID,
		Date:         d.Date,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		TrainerID:    d.TrainerID,
		AgeBracketID: d.AgeBracketID,
		IsActive:     d.IsActive,
		ProgramName:  d.ProgramName,
		BranchName:   d.BranchName,
		CourtName:    d.CourtName,
		TrainerName:  d.TrainerName,
		AgeMin:       d.AgeMin,
		AgeMax:       d.AgeMax,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
