package domain

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// Schedule represents one scheduled occurrence of a program at a court
// on a specific calendar date, with a half-open time interval [start, end)
type Schedule struct {
	ID        int64
	ProgramID int64
	BranchID  int64
	CourtID   int64

	Date      time.Time // Дата занятия без временной компоненты
	StartTime types.TimeString
	EndTime   types.TimeString

	TrainerID    *int64
	AgeBracketID *int64

	// IsActive soft-delete флаг: false означает, что занятие снято с расписания,
	// но строка физически не удаляется
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidInterval returns true if the schedule's time interval is well-formed
func (s *Schedule) HasValidInterval() bool {
	return !s.StartTime.IsZero() && !s.EndTime.IsZero() && s.StartTime.IsBefore(s.EndTime)
}

// SameExactKey returns true if two schedules share program, court and date —
// the coarse duplicate key rejected on create regardless of time overlap
func (s *Schedule) SameExactKey(other *Schedule) bool {
	return s.ProgramID == other.ProgramID &&
		s.CourtID == other.CourtID &&
		sameDate(s.Date, other.Date)
}

// ScheduleDetails Schedule, обогащённый справочными атрибутами для отображения
// Справочники (Program/Branch/Court/Trainer/AgeBracket) подтягиваются JOIN-ами на чтении
type ScheduleDetails struct {
	Schedule

	ProgramName string
	BranchName  string
	CourtName   string
	TrainerName *string
	AgeMin      *int
	AgeMax      *int
}

// ScheduleFilter фильтр выборки занятий
// Диапазон дат обязателен; остальные предикаты применяются, только если заданы,
// и комбинируются через AND
type ScheduleFilter struct {
	StartDate time.Time
	EndDate   time.Time

	BranchID     *int64
	CourtID      *int64
	AgeBracketID *int64

	// OnlyActive исключает soft-deleted строки
	OnlyActive bool
}

// SchedulePatch частичное обновление занятия
// nil-поле означает "оставить прежнее значение"
type SchedulePatch struct {
	ProgramID    *int64
	BranchID     *int64
	CourtID      *int64
	Date         *time.Time
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	TrainerID    *int64
	AgeBracketID *int64
	IsActive     *bool
}

// IsFullReschedule returns true when the patch carries every field that
// participates in conflict detection; only then is the overlap check re-run
func (p *SchedulePatch) IsFullReschedule() bool {
	return p.ProgramID != nil && p.CourtID != nil && p.Date != nil &&
		p.StartTime != nil && p.EndTime != nil
}

// sameDate сравнивает только календарные даты, без временной компоненты
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
