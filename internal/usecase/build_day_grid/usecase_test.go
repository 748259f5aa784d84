package build_day_grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/ptr"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/types"
)

// --- Фейки ---

type fakeScheduleRepo struct {
	schedules  []*domain.ScheduleDetails
	err        error
	lastFilter domain.ScheduleFilter
	calls      int
}

func (f *fakeScheduleRepo) GetWithFilter(_ context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleDetails, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules, nil
}

type fakeCourtRepo struct {
	courts []*domain.Court
	err    error
	calls  int
}

func (f *fakeCourtRepo) GetActive(_ context.Context) ([]*domain.Court, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.courts, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		AgeBracketID: 4,
		CourtID:      3,
		Date:         "2025-06-02",
	}
}

// --- Тесты ---

func TestExecute_SlotsCarryScheduleDate(t *testing.T) {
	repo := &fakeScheduleRepo{
		schedules: []*domain.ScheduleDetails{
			{
				Schedule: domain.Schedule{
					ID:        1,
					Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
					StartTime: types.TimeString("09:00"),
					EndTime:   types.TimeString("10:00"),
					IsActive:  true,
				},
				ProgramName: "Джуниор теннис",
				CourtName:   "Корт 1",
				TrainerName: ptr.Ptr("Иванов"),
			},
		},
	}
	courts := &fakeCourtRepo{courts: []*domain.Court{{ID: 1, Name: "Корт 1", IsActive: true}}}
	uc := NewUseCase(repo, courts, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)

	slot := resp.Rows[0].Slots[2]
	require.NotNil(t, slot)
	assert.Equal(t, "2025-06-02", slot.Date, "day grid slots must echo the schedule date")
	assert.Equal(t, "Иванов", slot.Trainer)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecute_MandatoryFiltersPassedThrough(t *testing.T) {
	repo := &fakeScheduleRepo{}
	courts := &fakeCourtRepo{}
	uc := NewUseCase(repo, courts, nopLogger{})

	req := validRequest()
	req.BranchID = ptr.Ptr(int64(2))

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.CourtID)
	assert.Equal(t, int64(3), *repo.lastFilter.CourtID)
	require.NotNil(t, repo.lastFilter.AgeBracketID)
	assert.Equal(t, int64(4), *repo.lastFilter.AgeBracketID)
	require.NotNil(t, repo.lastFilter.BranchID)
	assert.Equal(t, int64(2), *repo.lastFilter.BranchID)
	assert.True(t, repo.lastFilter.OnlyActive)
	assert.Equal(t, repo.lastFilter.StartDate, repo.lastFilter.EndDate, "day grid reads a single-day range")
}

func TestExecute_ValidationRejectsBeforeStoreAccess(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "missing age bracket", mutate: func(r *Request) { r.AgeBracketID = 0 }, wantErr: ErrInvalidInput},
		{name: "missing court", mutate: func(r *Request) { r.CourtID = 0 }, wantErr: ErrInvalidInput},
		{name: "missing date", mutate: func(r *Request) { r.Date = "" }, wantErr: ErrInvalidInput},
		{name: "non positive branch", mutate: func(r *Request) { r.BranchID = ptr.Ptr(int64(0)) }, wantErr: ErrInvalidInput},
		{name: "date with time component", mutate: func(r *Request) { r.Date = "2025-06-02T10:00:00" }, wantErr: ErrInvalidDate},
		{name: "wrong separator", mutate: func(r *Request) { r.Date = "02.06.2025" }, wantErr: ErrInvalidDate},
		{name: "out of range month", mutate: func(r *Request) { r.Date = "2025-13-02" }, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			courts := &fakeCourtRepo{}
			uc := NewUseCase(repo, courts, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, repo.calls, "invalid request must be rejected before any store access")
			assert.Equal(t, 0, courts.calls)
		})
	}
}

func TestExecute_RepositoryErrorsWrapped(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("court roster failure", func(t *testing.T) {
		uc := NewUseCase(&fakeScheduleRepo{}, &fakeCourtRepo{err: boom}, nopLogger{})
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("schedule read failure", func(t *testing.T) {
		uc := NewUseCase(&fakeScheduleRepo{err: boom}, &fakeCourtRepo{}, nopLogger{})
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
