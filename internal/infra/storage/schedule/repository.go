package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ClubCourt-ScheduleService/internal/domain"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/psqlbuilder"
)

// detailColumns колонки занятия вместе со справочными атрибутами
// Порядок колонок согласован со scanDetails
var detailColumns = []string{
	"s.id",
	"s.program_id",
	"s.branch_id",
	"s.court_id",
	"s.date",
	"s.start_time",
	"s.end_time",
	"s.trainer_id",
	"s.age_bracket_id",
	"s.is_active",
	"s.created_at",
	"s.updated_at",
	"p.name AS program_name",
	"b.name AS branch_name",
	"c.name AS court_name",
	"t.name AS trainer_name",
	"ab.age_min",
	"ab.age_max",
}

// Repository репозиторий для работы с расписанием занятий
// Единственный писатель таблицы schedules; сетка занятости читает через него же
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую строку расписания
// Если в контексте передана активная транзакция (через context.Value), использует её —
// проверка конфликтов и вставка должны выполняться в одной сериализуемой транзакции,
// иначе две конкурентные записи могут обе пройти проверку до коммита
func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"program_id",
			"branch_id",
			"court_id",
			"date",
			"start_time",
			"end_time",
			"trainer_id",
			"age_bracket_id",
			"is_active",
		).
		Values(
			s.ProgramID,
			s.BranchID,
			s.CourtID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.TrainerID,
			s.AgeBracketID,
			s.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает занятие по ID вместе со справочными атрибутами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.detailsSelect().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	details, err := scanDetailsRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return details, nil
}

// GetWithFilter получает занятия за период с опциональными фильтрами
// Диапазон дат обязателен; фильтры по филиалу, корту и возрастной группе
// применяются, только если заданы, и комбинируются через AND
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.detailsSelect().
		Where(squirrel.GtOrEq{"s.date": filter.StartDate}).
		Where(squirrel.LtOrEq{"s.date": filter.EndDate})

	if filter.BranchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.branch_id": *filter.BranchID})
	}

	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.court_id": *filter.CourtID})
	}

	if filter.AgeBracketID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.age_bracket_id": *filter.AgeBracketID})
	}

	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.is_active": true})
	}

	selectBuilder = selectBuilder.OrderBy("s.date ASC, s.start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetailsRows(rows)
}

// GetActiveByCourtAndDate получает активные занятия корта на дату
// Используется проверкой конфликтов: внутри транзакции строки блокируются
// через FOR UPDATE, чтобы закрыть гонку check-then-act между конкурентными записями
func (r *Repository) GetActiveByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.ScheduleDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.detailsSelect().
		Where(squirrel.Eq{"s.court_id": courtID}).
		Where(squirrel.Eq{"s.date": date}).
		Where(squirrel.Eq{"s.is_active": true}).
		OrderBy("s.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		// Блокируем только строки schedules: LEFT JOIN со справочниками
		// не позволяет блокировать всю выборку
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetailsRows(rows)
}

// ExistsActiveDuplicate проверяет наличие активного занятия с тем же
// (program, court, date) — точный ключ дубликата, запрещённый на create
// независимо от пересечения интервалов
func (r *Repository) ExistsActiveDuplicate(ctx context.Context, programID, courtID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("schedules").
		Where(squirrel.Eq{
			"program_id": programID,
			"court_id":   courtID,
			"date":       date,
			"is_active":  true,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveDuplicate - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveDuplicate - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}

// Update применяет частичное обновление занятия
// nil-поля патча сохраняют прежние значения; ID неизменяем
func (r *Repository) Update(ctx context.Context, id int64, patch domain.SchedulePatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("schedules").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.ProgramID != nil {
		updateBuilder = updateBuilder.Set("program_id", *patch.ProgramID)
	}
	if patch.BranchID != nil {
		updateBuilder = updateBuilder.Set("branch_id", *patch.BranchID)
	}
	if patch.CourtID != nil {
		updateBuilder = updateBuilder.Set("court_id", *patch.CourtID)
	}
	if patch.Date != nil {
		updateBuilder = updateBuilder.Set("date", *patch.Date)
	}
	if patch.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *patch.EndTime)
	}
	if patch.TrainerID != nil {
		updateBuilder = updateBuilder.Set("trainer_id", *patch.TrainerID)
	}
	if patch.AgeBracketID != nil {
		updateBuilder = updateBuilder.Set("age_bracket_id", *patch.AgeBracketID)
	}
	if patch.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *patch.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Deactivate помечает занятие неактивным (soft delete)
// Физическое удаление не выполняется: история занятий сохраняется
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// detailsSelect базовый SELECT занятий со справочными JOIN-ами
func (r *Repository) detailsSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailColumns...).
		From("schedules s").
		Join("programs p ON p.id = s.program_id").
		Join("branches b ON b.id = s.branch_id").
		Join("courts c ON c.id = s.court_id").
		LeftJoin("trainers t ON t.id = s.trainer_id").
		LeftJoin("age_brackets ab ON ab.id = s.age_bracket_id")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanDetails сканирует одну строку выборки в ScheduleDetails
func scanDetails(scanner rowScanner) (*domain.ScheduleDetails, error) {
	var details domain.ScheduleDetails
	var createdAt, updatedAt sql.NullTime

	err := scanner.Scan(
		&details.ID,
		&details.ProgramID,
		&details.BranchID,
		&details.CourtID,
		&details.Date,
		&details.StartTime,
		&details.EndTime,
		&details.TrainerID,
		&details.AgeBracketID,
		&details.IsActive,
		&createdAt,
		&updatedAt,
		&details.ProgramName,
		&details.BranchName,
		&details.CourtName,
		&details.TrainerName,
		&details.AgeMin,
		&details.AgeMax,
	)
	if err != nil {
		return nil, err
	}

	details.CreatedAt = createdAt.Time
	details.UpdatedAt = updatedAt.Time

	return &details, nil
}

// scanDetailsRow сканирует единственную строку результата
func scanDetailsRow(row *sql.Row) (*domain.ScheduleDetails, error) {
	return scanDetails(row)
}

// scanDetailsRows сканирует все строки результата
func scanDetailsRows(rows *sql.Rows) ([]*domain.ScheduleDetails, error) {
	schedules := make([]*domain.ScheduleDetails, 0)

	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetailsRows - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetailsRows - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
