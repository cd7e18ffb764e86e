package therapist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/dbmetrics"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/psqlbuilder"
)

var therapistColumns = []string{
	"id",
	"store_id",
	"name",
	"position",
	"years_of_experience",
	"specialties",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с мастерами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового мастера
func (r *Repository) Create(ctx context.Context, t *domain.Therapist) (*domain.Therapist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("therapists").
		Columns("store_id", "name", "position", "years_of_experience", "specialties", "status").
		Values(t.StoreID, t.Name, t.Position, t.YearsOfExperience, pq.Array(t.Specialties), t.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Therapist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(therapistColumns...).
		From("therapists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := r.scanTherapist(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTherapistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan therapist: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListByStore возвращает мастеров салона
// activeOnly скрывает деактивированных - так мастер пропадает из поиска,
// но его история записей сохраняется
func (r *Repository) ListByStore(ctx context.Context, storeID int64, activeOnly bool) ([]*domain.Therapist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(therapistColumns...).
		From("therapists").
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.TherapistActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	therapists := make([]*domain.Therapist, 0)
	for rows.Next() {
		t, err := r.scanTherapist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStore - scan row: %v", ErrScanRow, err)
		}
		therapists = append(therapists, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStore - rows error: %v", ErrScanRow, err)
	}

	return therapists, nil
}

// CountActiveByStore считает активных мастеров салона
// Используется правилом защиты от удаления салона с активными мастерами
func (r *Repository) CountActiveByStore(ctx context.Context, storeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("therapists").
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.Eq{"status": domain.TherapistActive}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByStore - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByStore - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет данные мастера
func (r *Repository) Update(ctx context.Context, t *domain.Therapist) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("therapists").
		Set("name", t.Name).
		Set("position", t.Position).
		Set("years_of_experience", t.YearsOfExperience).
		Set("specialties", pq.Array(t.Specialties)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

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
		return ErrTherapistNotFound
	}

	return nil
}

// SetStatus переключает статус мастера (active/inactive)
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.TherapistStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("therapists").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTherapistNotFound
	}

	return nil
}

// Delete удаляет мастера (физическое удаление)
// Допустимо только для мастеров без активных будущих записей -
// правило контролирует сервис каталога
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("therapists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTherapistNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTherapist сканирует одну строку в модель мастера
func (r *Repository) scanTherapist(row rowScanner) (*domain.Therapist, error) {
	var t domain.Therapist
	var createdAt, updatedAt sql.NullTime
	var specialties pq.StringArray

	err := row.Scan(
		&t.ID,
		&t.StoreID,
		&t.Name,
		&t.Position,
		&t.YearsOfExperience,
		&specialties,
		&t.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Specialties = []string(specialties)
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
