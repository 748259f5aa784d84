package update_schedule

import (
	"fmt"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.ProgramID != nil && *req.ProgramID <= 0 {
		return fmt.Errorf("%w: programID must be positive", ErrInvalidInput)
	}

	if req.BranchID != nil && *req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.CourtID != nil && *req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.TrainerID != nil && *req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.AgeBracketID != nil && *req.AgeBracketID <= 0 {
		return fmt.Errorf("%w: ageBracketID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateEffectiveInterval проверяет инвариант start < end на результирующих
// значениях (патч поверх текущей строки)
func validateEffectiveInterval(start, end types.TimeString) error {
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}

// isExactDuplicate проверяет, что конфликтующая строка полностью повторяет патч:
// одинаковые начало, конец и тренер. Такой конфликт репортится как дубликат,
// а не как общий конфликт времени
func isExactDuplicate(conflict *domain.ScheduleDetails, start, end types.TimeString, trainerID *int64) bool {
	if !conflict.StartTime.Equal(start) || !conflict.EndTime.Equal(end) {
		return false
	}

	if conflict.TrainerID == nil && trainerID == nil {
		return true
	}
	if conflict.TrainerID != nil && trainerID != nil {
		return *conflict.TrainerID == *trainerID
	}

	return false
}
