package build_grid

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
}

func (f *fakeScheduleRepo) GetWithFilter(_ context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleDetails, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules, nil
}

type fakeCourtRepo struct {
	courts []*domain.Court
	err    error
}

func (f *fakeCourtRepo) GetActive(_ context.Context) ([]*domain.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courts, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func rosterOfThree() []*domain.Court {
	return []*domain.Court{
		{ID: 1, Name: "Корт 1", IsActive: true},
		{ID: 2, Name: "Корт 2", IsActive: true},
		{ID: 3, Name: "Корт 3", IsActive: true},
	}
}

func detailsRow(id int64, court string, start, end string) *domain.ScheduleDetails {
	return &domain.ScheduleDetails{
		Schedule: domain.Schedule{
			ID:        id,
			Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			StartTime: types.TimeString(start),
			EndTime:   types.TimeString(end),
			IsActive:  true,
		},
		ProgramName: "Джуниор теннис",
		CourtName:   court,
	}
}

// --- Тесты ---

func TestExecute_RosterShapesTheGrid(t *testing.T) {
	// Корт без занятий всё равно получает строку с 16 пустыми слотами
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, &fakeCourtRepo{courts: rosterOfThree()}, nopLogger{})

	pick := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{PickDate: &pick})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)
	for i, name := range []string{"Корт 1", "Корт 2", "Корт 3"} {
		assert.Equal(t, name, resp.Rows[i].CourtName)
		for _, slot := range resp.Rows[i].Slots {
			assert.Nil(t, slot)
		}
	}
	assert.True(t, repo.lastFilter.OnlyActive, "grid must only read active schedules")
}

func TestExecute_SlotCoverage(t *testing.T) {
	// Занятие 09:00-11:00 занимает слоты 2 и 3 (часы 9 и 10), но не слот 4
	row := detailsRow(1, "Корт 2", "09:00", "11:00")
	row.TrainerName = ptr.Ptr("Иванов")
	row.AgeMin = ptr.Ptr(6)
	row.AgeMax = ptr.Ptr(8)

	uc := NewUseCase(
		&fakeScheduleRepo{schedules: []*domain.ScheduleDetails{row}},
		&fakeCourtRepo{courts: rosterOfThree()},
		nopLogger{},
	)

	pick := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{PickDate: &pick})

	require.NoError(t, err)
	court2 := resp.Rows[1]

	require.NotNil(t, court2.Slots[2])
	require.NotNil(t, court2.Slots[3])
	assert.Nil(t, court2.Slots[1])
	assert.Nil(t, court2.Slots[4])

	// Многочасовое занятие повторяет одинаковый summary в каждом слоте
	assert.Same(t, court2.Slots[2], court2.Slots[3])
	assert.Equal(t, "Джуниор теннис", court2.Slots[2].ProgramName)
	assert.Equal(t, "6-8 Years", court2.Slots[2].AgeLabel)
	assert.Equal(t, "09:00", court2.Slots[2].Time)
	assert.Equal(t, "11:00", court2.Slots[2].EndTime)
	assert.Equal(t, "Иванов", court2.Slots[2].Trainer)
	assert.Empty(t, court2.Slots[2].Date, "weekly grid slots carry no date")

	// Остальные корты не затронуты
	for _, slot := range resp.Rows[0].Slots {
		assert.Nil(t, slot)
	}
}

func TestExecute_GridBoundaries(t *testing.T) {
	// Час 07 — первый слот, час 22 — последний; часы вне сетки отсекаются
	uc := NewUseCase(
		&fakeScheduleRepo{schedules: []*domain.ScheduleDetails{
			detailsRow(1, "Корт 1", "07:00", "08:00"),
			detailsRow(2, "Корт 2", "22:00", "23:00"),
			detailsRow(3, "Корт 3", "06:00", "08:00"),
		}},
		&fakeCourtRepo{courts: rosterOfThree()},
		nopLogger{},
	)

	pick := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{PickDate: &pick})

	require.NoError(t, err)
	assert.NotNil(t, resp.Rows[0].Slots[0])
	assert.NotNil(t, resp.Rows[1].Slots[domain.GridSlots-1])

	// 06:00-08:00: час 6 вне сетки, час 7 попадает в слот 0
	assert.NotNil(t, resp.Rows[2].Slots[0])
	assert.Nil(t, resp.Rows[2].Slots[1])
}

func TestExecute_UnknownCourtNameSkipped(t *testing.T) {
	// Корт деактивировали после создания занятия: имя не матчится с ростером
	uc := NewUseCase(
		&fakeScheduleRepo{schedules: []*domain.ScheduleDetails{
			detailsRow(1, "Снесённый корт", "09:00", "10:00"),
		}},
		&fakeCourtRepo{courts: rosterOfThree()},
		nopLogger{},
	)

	pick := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{PickDate: &pick})

	require.NoError(t, err)
	for _, row := range resp.Rows {
		for _, slot := range row.Slots {
			assert.Nil(t, slot)
		}
	}
}

func TestExecute_DefaultRangeIsCurrentISOWeek(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "midweek",
			now:        time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC), // среда
			wantMonday: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "monday maps to itself",
			now:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "sunday belongs to the ending week",
			now:        time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			uc := NewUseCase(repo, &fakeCourtRepo{courts: rosterOfThree()}, nopLogger{}).
				WithTimeProvider(&fixedTimeProvider{now: tt.now})

			resp, err := uc.Execute(context.Background(), &Request{})

			require.NoError(t, err)
			assert.Equal(t, tt.wantMonday, resp.StartDate)
			assert.Equal(t, tt.wantSunday, resp.EndDate)
			assert.Equal(t, tt.wantMonday, repo.lastFilter.StartDate)
			assert.Equal(t, tt.wantSunday, repo.lastFilter.EndDate)
		})
	}
}

func TestExecute_PickDateOverridesWeekRange(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, &fakeCourtRepo{courts: rosterOfThree()}, nopLogger{})

	pick := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{PickDate: &pick})

	require.NoError(t, err)
	assert.Equal(t, pick, resp.StartDate)
	assert.Equal(t, pick, resp.EndDate)
}

func TestExecute_FiltersPassedThrough(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, &fakeCourtRepo{courts: rosterOfThree()}, nopLogger{})

	pick := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		PickDate:     &pick,
		BranchID:     ptr.Ptr(int64(2)),
		CourtID:      ptr.Ptr(int64(3)),
		AgeBracketID: ptr.Ptr(int64(4)),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.BranchID)
	assert.Equal(t, int64(2), *repo.lastFilter.BranchID)
	require.NotNil(t, repo.lastFilter.CourtID)
	assert.Equal(t, int64(3), *repo.lastFilter.CourtID)
	require.NotNil(t, repo.lastFilter.AgeBracketID)
	assert.Equal(t, int64(4), *repo.lastFilter.AgeBracketID)
}

func TestExecute_RepositoryErrorsWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	pick := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("court roster failure", func(t *testing.T) {
		uc := NewUseCase(&fakeScheduleRepo{}, &fakeCourtRepo{err: boom}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{PickDate: &pick})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("schedule read failure", func(t *testing.T) {
		uc := NewUseCase(&fakeScheduleRepo{err: boom}, &fakeCourtRepo{courts: rosterOfThree()}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{PickDate: &pick})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
