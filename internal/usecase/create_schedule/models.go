package create_schedule

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// Request модель запроса на создание занятия
// Программа, филиал, корт, дата и интервал обязательны;
// тренер и возрастная группа опциональны
type Request struct {
	ProgramID    int64
	BranchID     int64
	CourtID      int64
	Date         time.Time        // Дата занятия (без времени)
	StartTime    types.TimeString // Время начала, например "09:00"
	EndTime      types.TimeString // Время конца, строго позже начала
	TrainerID    *int64
	AgeBracketID *int64
}

// Response модель ответа с созданным занятием
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

	CreatedAt time.Time
	UpdatedAt time.Time
}
