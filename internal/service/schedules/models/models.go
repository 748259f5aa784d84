package models

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// Статусы результата soft delete
const (
	// StatusDeactivated занятие было активно и помечено неактивным
	StatusDeactivated = "deactivated"

	// StatusAlreadyInactive занятие уже было неактивно — идемпотентный no-op,
	// информационный результат, а не ошибка
	StatusAlreadyInactive = "already_inactive"

	// StatusNotFound занятие с таким ID не существует
	StatusNotFound = "not_found"

	// StatusError не удалось обработать элемент пакета из-за ошибки хранилища
	StatusError = "error"
)

// Request модели

// ListSchedulesRequest запрос списка занятий за период с фильтрами
type ListSchedulesRequest struct {
	StartDate       time.Time
	EndDate         time.Time
	BranchID        *int64
	CourtID         *int64
	AgeBracketID    *int64
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSchedulesRequest) ToDomainFilter() domain.ScheduleFilter {
	return domain.ScheduleFilter{
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		BranchID:     r.BranchID,
		CourtID:      r.CourtID,
		AgeBracketID: r.AgeBracketID,
		OnlyActive:   !r.IncludeInactive,
	}
}

// Response модели

// ScheduleResponse занятие со справочными атрибутами
type ScheduleResponse struct {
	ID           int64   `json:"id"`
	ProgramID    int64   `json:"programId"`
	BranchID     int64   `json:"branchId"`
	CourtID      int64   `json:"courtId"`
	Date         string  `json:"date"`      // "2025-06-01"
	StartTime    string  `json:"startTime"` // "09:00"
	EndTime      string  `json:"endTime"`   // "10:00"
	TrainerID    *int64  `json:"trainerId,omitempty"`
	AgeBracketID *int64  `json:"ageBracketId,omitempty"`
	IsActive     bool    `json:"isActive"`
	ProgramName  string  `json:"programName"`
	BranchName   string  `json:"branchName"`
	CourtName    string  `json:"courtName"`
	TrainerName  *string `json:"trainerName,omitempty"`
	AgeMin       *int    `json:"ageMin,omitempty"`
	AgeMax       *int    `json:"ageMax,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleListResponse список занятий
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// DeactivateResult результат soft delete одного занятия
type DeactivateResult struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// DeactivateManyResponse результаты пакетного soft delete
// Элементы обрабатываются независимо: отсутствующий ID не прерывает остальные
type DeactivateManyResponse struct {
	Results []DeactivateResult `json:"results"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(d *domain.ScheduleDetails) *ScheduleResponse {
	if d == nil {
		return nil
	}

	return &ScheduleResponse{
		ID:           d.ID,
		ProgramID:    d.ProgramID,
		BranchID:     d.BranchID,
		CourtID:      d.CourtID,
		Date:         d.Date.Format(domain.DateFormat),
		StartTime:    d.StartTime.String(),
		EndTime:      d.EndTime.String(),
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

// FromDomainScheduleList конвертирует список domain моделей в DTO
func FromDomainScheduleList(schedules []*domain.ScheduleDetails) *ScheduleListResponse {
	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
	}

	for _, s := range schedules {
		if dto := FromDomainSchedule(s); dto != nil {
			resp.Schedules = append(resp.Schedules, *dto)
		}
	}

	return resp
}
