package build_grid

import (
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// Request модель запроса на построение сетки занятости
// nil-фильтр означает "все"; nil PickDate переключает диапазон
// на текущую ISO-неделю (понедельник–воскресенье) на момент вызова
type Request struct {
	AgeBracketID *int64
	BranchID     *int64
	CourtID      *int64
	PickDate     *time.Time
}

// Response модель ответа с построенной сеткой
type Response struct {
	StartDate time.Time // Начало диапазона выборки
	EndDate   time.Time // Конец диапазона выборки
	Rows      []domain.CourtRow
}
