package update_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/ClubCourt-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/ptr"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// --- Фейки ---

type fakeScheduleRepo struct {
	current  *domain.ScheduleDetails
	existing []*domain.ScheduleDetails

	getErr    error
	listErr   error
	updateErr error

	updatedPatch *domain.SchedulePatch
	conflictRead bool
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id int64) (*domain.ScheduleDetails, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.current == nil || f.current.ID != id {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	out := *f.current
	return &out, nil
}

func (f *fakeScheduleRepo) GetActiveByCourtAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.ScheduleDetails, error) {
	f.conflictRead = true
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.existing, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, _ int64, patch domain.SchedulePatch) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedPatch = &patch
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func currentSchedule() *domain.ScheduleDetails {
	return &domain.ScheduleDetails{
		Schedule: domain.Schedule{
			ID:        5,
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

func fullRescheduleRequest() *Request {
	return &Request{
		ID:        5,
		ProgramID: ptr.Ptr(int64(1)),
		CourtID:   ptr.Ptr(int64(3)),
		Date:      ptr.Ptr(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
		StartTime: ptr.Ptr(types.TimeString("12:00")),
		EndTime:   ptr.Ptr(types.TimeString("13:00")),
	}
}

// --- Тесты ---

func TestExecute_PartialPatchSkipsConflictCheck(t *testing.T) {
	repo := &fakeScheduleRepo{current: currentSchedule()}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	// Меняется только тренер — конфликты не перепроверяются
	resp, err := uc.Execute(context.Background(), &Request{
		ID:        5,
		TrainerID: ptr.Ptr(int64(9)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.False(t, repo.conflictRead, "partial patch must not trigger a conflict read")
	require.NotNil(t, repo.updatedPatch)
	assert.Equal(t, int64(9), *repo.updatedPatch.TrainerID)
}

func TestExecute_FullRescheduleRunsConflictCheck(t *testing.T) {
	repo := &fakeScheduleRepo{current: currentSchedule()}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), fullRescheduleRequest())

	require.NoError(t, err)
	assert.True(t, repo.conflictRead, "full reschedule must re-run the conflict check")
}

func TestExecute_SelfRowExcludedFromConflicts(t *testing.T) {
	// Перенос занятия "на своё же время" должен проходить:
	// собственная строка не считается конфликтом
	current := currentSchedule()
	repo := &fakeScheduleRepo{
		current:  current,
		existing: []*domain.ScheduleDetails{current},
	}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := fullRescheduleRequest()
	req.Date = ptr.Ptr(current.Date)
	req.StartTime = ptr.Ptr(types.TimeString("09:00"))
	req.EndTime = ptr.Ptr(types.TimeString("10:00"))

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_DuplicateVsTimeConflict(t *testing.T) {
	other := &domain.ScheduleDetails{
		Schedule: domain.Schedule{
			ID:        8,
			CourtID:   3,
			StartTime: "12:00",
			EndTime:   "13:00",
			IsActive:  true,
		},
	}

	t.Run("identical start, end and trainer reported as duplicate", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			current:  currentSchedule(),
			existing: []*domain.ScheduleDetails{other},
		}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), fullRescheduleRequest())

		assert.ErrorIs(t, err, ErrDuplicateSchedule)
		assert.Nil(t, repo.updatedPatch)
	})

	t.Run("overlap with different interval reported as time conflict", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			current:  currentSchedule(),
			existing: []*domain.ScheduleDetails{other},
		}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		req := fullRescheduleRequest()
		req.StartTime = ptr.Ptr(types.TimeString("12:30"))
		req.EndTime = ptr.Ptr(types.TimeString("14:00"))

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("same interval but different trainer reported as time conflict", func(t *testing.T) {
		withTrainer := *other
		withTrainer.TrainerID = ptr.Ptr(int64(7))
		repo := &fakeScheduleRepo{
			current:  currentSchedule(),
			existing: []*domain.ScheduleDetails{&withTrainer},
		}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		req := fullRescheduleRequest()
		req.TrainerID = ptr.Ptr(int64(9))

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrTimeConflict)
	})
}

func TestExecute_EffectiveIntervalValidated(t *testing.T) {
	repo := &fakeScheduleRepo{current: currentSchedule()}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	// Только начало двигается за текущий конец — результирующий интервал
	// становится вырожденным
	_, err := uc.Execute(context.Background(), &Request{
		ID:        5,
		StartTime: ptr.Ptr(types.TimeString("11:00")),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updatedPatch)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:        404,
		TrainerID: ptr.Ptr(int64(9)),
	})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecute_ValidationRejectsBadInput(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "non positive id", req: &Request{ID: 0}},
		{name: "non positive court", req: &Request{ID: 5, CourtID: ptr.Ptr(int64(-1))}},
		{name: "malformed start time", req: &Request{ID: 5, StartTime: ptr.Ptr(types.TimeString("half past nine"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrorsWrapped(t *testing.T) {
	boom := errors.New("connection refused")

	repo := &fakeScheduleRepo{current: currentSchedule(), updateErr: boom}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:        5,
		TrainerID: ptr.Ptr(int64(9)),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
