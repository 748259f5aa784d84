package build_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// UseCase use case построения сетки занятости кортов
// Только чтение: сетка никогда не мутирует расписание
type UseCase struct {
	scheduleRepo ScheduleRepository
	courtRepo    CourtRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	courtRepo CourtRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		courtRepo:    courtRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case построения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Выводим диапазон дат: явная дата даёт однодневный диапазон,
	// иначе берётся текущая ISO-неделя на момент вызова
	startDate, endDate := uc.resolveDateRange(req)

	uc.logger.Info("BuildGrid: range=%s..%s, branch=%v, court=%v, age=%v",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat),
		req.BranchID, req.CourtID, req.AgeBracketID)

	// 2. Собираем фильтр: диапазон дат обязателен, остальные предикаты
	// применяются только если заданы (AND-композиция)
	filter := domain.ScheduleFilter{
		StartDate:    startDate,
		EndDate:      endDate,
		BranchID:     req.BranchID,
		CourtID:      req.CourtID,
		AgeBracketID: req.AgeBracketID,
		OnlyActive:   true,
	}

	// 3. Ростер активных кортов задаёт форму сетки: корт без занятий
	// всё равно получает строку с 16 пустыми слотами
	roster, err := uc.courtRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("BuildGrid: failed to get court roster: %v", err)
		return nil, fmt.Errorf("%w: failed to get court roster: %v", ErrInternal, err)
	}

	// 4. Подходящие занятия со справочными атрибутами
	schedules, err := uc.scheduleRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("BuildGrid: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 5. Строим строки сетки
	rows := buildRows(roster, schedules, false)

	uc.logger.Info("BuildGrid: built grid with %d courts, %d schedules", len(rows), len(schedules))

	return &Response{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      rows,
	}, nil
}

// resolveDateRange возвращает диапазон выборки для запроса
func (uc *UseCase) resolveDateRange(req *Request) (start, end time.Time) {
	if req.PickDate != nil {
		day := *req.PickDate
		return day, day
	}
	return isoWeekRange(uc.timeProvider.Now())
}
