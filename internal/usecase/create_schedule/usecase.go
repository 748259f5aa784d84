package create_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
)

// UseCase use case создания занятия с проверкой конфликтов
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания занятия
// Проверки и вставка выполняются в одной сериализуемой транзакции,
// чтобы две конкурентные записи не прошли проверку конфликтов одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: program=%d, branch=%d, court=%d, date=%s, time=%s-%s",
		req.ProgramID, req.BranchID, req.CourtID, req.Date.Format(domain.DateFormat),
		req.StartTime, req.EndTime)

	// 1. Валидация входных данных (до обращения к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Schedule

	// 2. Проверки и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Точный ключ дубликата: активное занятие с теми же
		// программой, кортом и датой запрещено даже без пересечения времени
		exists, err := uc.scheduleRepo.ExistsActiveDuplicate(txCtx, req.ProgramID, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("CreateSchedule: duplicate check failed: %v", err)
			return fmt.Errorf("%w: duplicate check failed: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateSchedule: duplicate for program=%d, court=%d, date=%s",
				req.ProgramID, req.CourtID, req.Date.Format(domain.DateFormat))
			return ErrDuplicateSchedule
		}

		// 2.2. Пересечение интервалов: любые активные занятия корта в этот день,
		// независимо от программы (строки читаются с FOR UPDATE)
		existing, err := uc.scheduleRepo.GetActiveByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to get schedules for conflict check: %v", err)
			return fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}

		if conflict := domain.FindConflict(req.StartTime, req.EndTime, existing, 0); conflict != nil {
			uc.logger.Warn("CreateSchedule: time conflict with schedule id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: conflicts with schedule id=%d (%s-%s)",
				ErrTimeConflict, conflict.ID, conflict.StartTime, conflict.EndTime)
		}

		// 2.3. Создаем занятие; новая строка всегда активна
		schedule := &domain.Schedule{
			ProgramID:    req.ProgramID,
			BranchID:     req.BranchID,
			CourtID:      req.CourtID,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			TrainerID:    req.TrainerID,
			AgeBracketID: req.AgeBracketID,
			IsActive:     true,
		}

		created, err := uc.scheduleRepo.Create(txCtx, schedule)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSchedule: successfully created schedule id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		ProgramID:    result.ProgramID,
		BranchID:     result.BranchID,
		CourtID:      result.CourtID,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		TrainerID:    result.TrainerID,
		AgeBracketID: result.AgeBracketID,
		IsActive:     result.IsActive,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
