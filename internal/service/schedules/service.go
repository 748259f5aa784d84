package schedules

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/m04kA/ClubCourt-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules/models"
)

// Service сервис чтения расписания и soft delete
// Конфликтные операции (create/update) живут в отдельных usecase-пакетах
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetByID получает занятие по ID со справочными атрибутами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%d", id)

	details, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(details), nil
}

// List получает занятия за период с фильтрами
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching schedules period=%s..%s",
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		s.logger.Warn("List: date range is required")
		return nil, fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("List: end date before start date")
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	schedules, err := s.scheduleRepo.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d schedules", len(schedules))
	return models.FromDomainScheduleList(schedules), nil
}

// Deactivate помечает занятие неактивным (soft delete)
// Повторная деактивация — идемпотентный no-op: возвращается информационный
// статус "already_inactive", а не ошибка
func (s *Service) Deactivate(ctx context.Context, id int64) (*models.DeactivateResult, error) {
	s.logger.Info("Deactivate: deactivating schedule id=%d", id)

	details, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Deactivate: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Deactivate: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	if !details.IsActive {
		s.logger.Info("Deactivate: schedule id=%d already inactive", id)
		return &models.DeactivateResult{ID: id, Status: models.StatusAlreadyInactive}, nil
	}

	if err := s.scheduleRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Deactivate: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated schedule id=%d", id)
	return &models.DeactivateResult{ID: id, Status: models.StatusDeactivated}, nil
}

// DeactivateMany помечает неактивными несколько занятий
// Каждый ID обрабатывается независимо: отсутствующая строка даёт статус
// "not_found" и не прерывает обработку остальных
func (s *Service) DeactivateMany(ctx context.Context, ids []int64) (*models.DeactivateManyResponse, error) {
	s.logger.Info("DeactivateMany: deactivating %d schedules", len(ids))

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: ids list is empty", ErrInvalidInput)
	}

	resp := &models.DeactivateManyResponse{
		Results: make([]models.DeactivateResult, 0, len(ids)),
	}

	for _, id := range ids {
		result, err := s.Deactivate(ctx, id)
		if err != nil {
			status := models.StatusError
			if errors.Is(err, ErrScheduleNotFound) {
				status = models.StatusNotFound
			}
			resp.Results = append(resp.Results, models.DeactivateResult{ID: id, Status: status})
			continue
		}
		resp.Results = append(resp.Results, *result)
	}

	return resp, nil
}
