package build_day_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/ptr"
)

// UseCase use case построения однодневной сетки занятости
// Алгоритм совпадает с недельной сеткой; отличаются обязательность фильтров,
// строгая валидация даты до обращения к хранилищу и дата занятия в каждом слоте
type UseCase struct {
	scheduleRepo ScheduleRepository
	courtRepo    CourtRepository
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
		logger:       logger,
	}
}

// Execute выполняет use case построения однодневной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildDayGrid: date=%s, court=%d, age=%d", req.Date, req.CourtID, req.AgeBracketID)

	// 1. Валидация: все фильтры обязательны, дата — строгий YYYY-MM-DD литерал
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("BuildDayGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Однодневный диапазон + обязательные фильтры
	filter := domain.ScheduleFilter{
		StartDate:    date,
		EndDate:      date,
		BranchID:     req.BranchID,
		CourtID:      ptr.Ptr(req.CourtID),
		AgeBracketID: ptr.Ptr(req.AgeBracketID),
		OnlyActive:   true,
	}

	// 3. Ростер активных кортов задаёт строки сетки
	roster, err := uc.courtRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("BuildDayGrid: failed to get court roster: %v", err)
		return nil, fmt.Errorf("%w: failed to get court roster: %v", ErrInternal, err)
	}

	// 4. Подходящие занятия
	schedules, err := uc.scheduleRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("BuildDayGrid: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 5. Строим строки, каждому занятому слоту проставляется дата занятия
	rows := populateRows(roster, schedules)

	uc.logger.Info("BuildDayGrid: built grid with %d courts, %d schedules", len(rows), len(schedules))

	return &Response{
		Date: date,
		Rows: rows,
	}, nil
}

// validateRequest валидирует запрос и парсит дату
func validateRequest(req *Request) (time.Time, error) {
	if req.AgeBracketID <= 0 {
		return time.Time{}, fmt.Errorf("%w: ageBracketID is required", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return time.Time{}, fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if req.BranchID != nil && *req.BranchID <= 0 {
		return time.Time{}, fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	return date, nil
}

// populateRows строит строки сетки по ростеру и занятиям
// Занятие с именем корта вне ростера молча пропускается
func populateRows(roster []*domain.Court, schedules []*domain.ScheduleDetails) []domain.CourtRow {
	rows := make([]domain.CourtRow, len(roster))
	index := make(map[string]int, len(roster))

	for i, c := range roster {
		rows[i] = domain.CourtRow{CourtName: c.Name}
		index[c.Name] = i
	}

	for _, s := range schedules {
		rowIdx, ok := index[s.CourtName]
		if !ok {
			continue
		}

		startHour, err := s.StartTime.Hour()
		if err != nil {
			continue
		}
		endHour, err := s.EndTime.Hour()
		if err != nil {
			continue
		}

		summary := &domain.SlotSummary{
			ProgramName: s.ProgramName,
			AgeLabel:    domain.AgeBracketLabel(s.AgeMin, s.AgeMax),
			Time:        s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			Date:        s.Date.Format(domain.DateFormat),
		}
		if s.TrainerName != nil {
			summary.Trainer = *s.TrainerName
		}

		for i := domain.SlotIndex(startHour); i < domain.SlotIndex(endHour); i++ {
			if i < 0 || i >= domain.GridSlots {
				continue
			}
			rows[rowIdx].Slots[i] = summary
		}
	}

	return rows
}
