package schedules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/ClubCourt-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules/models"
)

// --- Фейки ---

type fakeScheduleRepo struct {
	rows map[int64]*domain.ScheduleDetails

	listed     []*domain.ScheduleDetails
	listErr    error
	lastFilter domain.ScheduleFilter

	deactivateErrs map[int64]error
	deactivated    []int64
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id int64) (*domain.ScheduleDetails, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	out := *row
	return &out, nil
}

func (f *fakeScheduleRepo) GetWithFilter(_ context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleDetails, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

func (f *fakeScheduleRepo) Deactivate(_ context.Context, id int64) error {
	if err := f.deactivateErrs[id]; err != nil {
		return err
	}
	f.deactivated = append(f.deactivated, id)
	if row, ok := f.rows[id]; ok {
		row.IsActive = false
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeRow(id int64) *domain.ScheduleDetails {
	return &domain.ScheduleDetails{
		Schedule: domain.Schedule{
			ID:        id,
			ProgramID: 1,
			BranchID:  2,
			CourtID:   3,
			Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
			EndTime:   "10:00",
			IsActive:  true,
		},
		ProgramName: "Джуниор теннис",
		BranchName:  "Центральный",
		CourtName:   "Корт 1",
	}
}

// --- Тесты ---

func TestGetByID(t *testing.T) {
	repo := &fakeScheduleRepo{rows: map[int64]*domain.ScheduleDetails{5: activeRow(5)}}
	svc := NewService(repo, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "09:00", resp.StartTime)
		assert.Equal(t, "Корт 1", resp.CourtName)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})
}

func TestList(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	t.Run("passes filter through and excludes inactive by default", func(t *testing.T) {
		repo := &fakeScheduleRepo{listed: []*domain.ScheduleDetails{activeRow(1), activeRow(2)}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.List(context.Background(), &models.ListSchedulesRequest{
			StartDate: start,
			EndDate:   end,
		})

		require.NoError(t, err)
		assert.Len(t, resp.Schedules, 2)
		assert.True(t, repo.lastFilter.OnlyActive)
	})

	t.Run("includeInactive disables the active predicate", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, nopLogger{})

		_, err := svc.List(context.Background(), &models.ListSchedulesRequest{
			StartDate:       start,
			EndDate:         end,
			IncludeInactive: true,
		})

		require.NoError(t, err)
		assert.False(t, repo.lastFilter.OnlyActive)
	})

	t.Run("missing range rejected before store access", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, nopLogger{})

		_, err := svc.List(context.Background(), &models.ListSchedulesRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, nopLogger{})

		_, err := svc.List(context.Background(), &models.ListSchedulesRequest{
			StartDate: end,
			EndDate:   start,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeactivate(t *testing.T) {
	t.Run("active row is deactivated", func(t *testing.T) {
		repo := &fakeScheduleRepo{rows: map[int64]*domain.ScheduleDetails{5: activeRow(5)}}
		svc := NewService(repo, nopLogger{})

		result, err := svc.Deactivate(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, models.StatusDeactivated, result.Status)
		assert.Equal(t, []int64{5}, repo.deactivated)
	})

	t.Run("repeat deactivation is an idempotent no-op", func(t *testing.T) {
		row := activeRow(5)
		row.IsActive = false
		repo := &fakeScheduleRepo{rows: map[int64]*domain.ScheduleDetails{5: row}}
		svc := NewService(repo, nopLogger{})

		result, err := svc.Deactivate(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, models.StatusAlreadyInactive, result.Status)
		assert.Empty(t, repo.deactivated, "already inactive row must not be written again")
	})

	t.Run("missing row", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, nopLogger{})

		_, err := svc.Deactivate(context.Background(), 404)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})
}

func TestDeactivateMany(t *testing.T) {
	t.Run("per id statuses, missing rows do not abort the batch", func(t *testing.T) {
		inactive := activeRow(2)
		inactive.IsActive = false
		repo := &fakeScheduleRepo{
			rows: map[int64]*domain.ScheduleDetails{
				1: activeRow(1),
				2: inactive,
				3: activeRow(3),
			},
			deactivateErrs: map[int64]error{3: errors.New("connection refused")},
		}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.DeactivateMany(context.Background(), []int64{1, 2, 3, 404})

		require.NoError(t, err)
		require.Len(t, resp.Results, 4)
		assert.Equal(t, models.DeactivateResult{ID: 1, Status: models.StatusDeactivated}, resp.Results[0])
		assert.Equal(t, models.DeactivateResult{ID: 2, Status: models.StatusAlreadyInactive}, resp.Results[1])
		assert.Equal(t, models.DeactivateResult{ID: 3, Status: models.StatusError}, resp.Results[2])
		assert.Equal(t, models.DeactivateResult{ID: 404, Status: models.StatusNotFound}, resp.Results[3])
	})

	t.Run("empty ids list rejected", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, nopLogger{})

		_, err := svc.DeactivateMany(context.Background(), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
