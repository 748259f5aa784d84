package update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/ClubCourt-ScheduleService/internal/infra/storage/schedule"
)

// UseCase use case обновления занятия
// Проверка пересечений повторяется только при полном переносе (программа,
// корт, дата и интервал заданы целиком) и исключает саму обновляемую строку.
// Точный ключ дубликата (program, court, date) на update НЕ перепроверяется —
// асимметрия с create сохранена намеренно: клиенты полагаются на более
// мягкую семантику обновления
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

// Execute выполняет use case обновления занятия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	var result *domain.ScheduleDetails

	// 2. Чтение, проверки и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем текущую строку
		current, err := uc.scheduleRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("UpdateSchedule: schedule id=%d not found", req.ID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("UpdateSchedule: failed to get schedule id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 2.2. Вычисляем результирующие значения: патч поверх текущей строки
		effective := applyPatch(current, req)

		// start < end перепроверяется на результирующем интервале
		if err := validateEffectiveInterval(effective.StartTime, effective.EndTime); err != nil {
			uc.logger.Warn("UpdateSchedule: interval validation failed for id=%d: %v", req.ID, err)
			return err
		}

		// 2.3. Проверка пересечений — только при полном переносе
		patch := req.ToPatch()
		if patch.IsFullReschedule() {
			existing, err := uc.scheduleRepo.GetActiveByCourtAndDate(txCtx, *req.CourtID, *req.Date)
			if err != nil {
				uc.logger.Error("UpdateSchedule: failed to get schedules for conflict check: %v", err)
				return fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
			}

			// Сама обновляемая строка исключается из множества кандидатов:
			// перенос занятия "на своё же время" должен проходить
			conflict := domain.FindConflict(*req.StartTime, *req.EndTime, existing, req.ID)
			if conflict != nil {
				if isExactDuplicate(conflict, *req.StartTime, *req.EndTime, effective.TrainerID) {
					uc.logger.Warn("UpdateSchedule: duplicate of schedule id=%d", conflict.ID)
					return fmt.Errorf("%w: schedule id=%d", ErrDuplicateSchedule, conflict.ID)
				}
				uc.logger.Warn("UpdateSchedule: time conflict with schedule id=%d (%s-%s)",
					conflict.ID, conflict.StartTime, conflict.EndTime)
				return fmt.Errorf("%w: conflicts with schedule id=%d (%s-%s)",
					ErrTimeConflict, conflict.ID, conflict.StartTime, conflict.EndTime)
			}
		}

		// 2.4. Применяем патч
		if err := uc.scheduleRepo.Update(txCtx, req.ID, patch); err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return ErrScheduleNotFound
			}
			uc.logger.Error("UpdateSchedule: failed to update schedule id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		// 2.5. Перечитываем строку со справочными атрибутами для ответа
		updated, err := uc.scheduleRepo.GetByID(txCtx, req.ID)
		if err != nil {
			uc.logger.Error("UpdateSchedule: failed to reload schedule id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to reload schedule: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSchedule: successfully updated schedule id=%d", result.ID)

	return fromDetails(result), nil
}

// applyPatch возвращает копию занятия с применёнными полями патча
// Используется только для валидации результирующих значений
func applyPatch(current *domain.ScheduleDetails, req *Request) domain.Schedule {
	effective := current.Schedule

	if req.ProgramID != nil {
		effective.ProgramID = *req.ProgramID
	}
	if req.BranchID != nil {
		effective.BranchID = *req.BranchID
	}
	if req.CourtID != nil {
		effective.CourtID = *req.CourtID
	}
	if req.Date != nil {
		effective.Date = *req.Date
	}
	if req.StartTime != nil {
		effective.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		effective.EndTime = *req.EndTime
	}
	if req.TrainerID != nil {
		effective.TrainerID = req.TrainerID
	}
	if req.AgeBracketID != nil {
		effective.AgeBracketID = req.AgeBracketID
	}
	if req.IsActive != nil {
		effective.IsActive = *req.IsActive
	}

	return effective
}
