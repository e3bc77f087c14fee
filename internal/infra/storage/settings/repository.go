package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/psqlbuilder"
)

const (
	tableName = "tenant_scheduling_settings"

	pqCheckViolation = "23514"
)

var columns = []string{
	"tenant_id",
	"working_hours",
	"working_days",
	"max_concurrent_appointments",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository stores per-tenant scheduling settings. working_hours and working_days
// are TEXT columns that keep every historically saved shape verbatim.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenantID returns ErrSettingsNotFound when the tenant has no row
func (r *Repository) GetByTenantID(ctx context.Context, tenantID int64) (*domain.TenantSchedulingSettings, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - build select query: %v", ErrBuildQuery, err)
	}

	settings, err := scanSettings(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - scan settings: %v", ErrScanRow, err)
	}

	return settings, nil
}

// Upsert inserts or replaces the tenant's settings and returns the stored row
func (r *Repository) Upsert(ctx context.Context, settings *domain.TenantSchedulingSettings) (*domain.TenantSchedulingSettings, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"tenant_id",
			"working_hours",
			"working_days",
			"max_concurrent_appointments",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			settings.TenantID,
			settings.WorkingHoursRaw,
			settings.WorkingDaysRaw,
			settings.MaxConcurrentAppointments,
			settings.AdvanceBookingDays,
			settings.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			working_hours = EXCLUDED.working_hours,
			working_days = EXCLUDED.working_days,
			max_concurrent_appointments = EXCLUDED.max_concurrent_appointments,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	stored, err := scanSettings(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqCheckViolation {
			return nil, fmt.Errorf("%w: Upsert - %s", ErrConstraintViolation, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return stored, nil
}

// DeleteByTenantID removes the tenant's settings; the tenant falls back to defaults
func (r *Repository) DeleteByTenantID(ctx context.Context, tenantID int64) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByTenantID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByTenantID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByTenantID - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

func scanSettings(row *sql.Row) (*domain.TenantSchedulingSettings, error) {
	var settings domain.TenantSchedulingSettings
	var workingHours, workingDays sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&settings.TenantID,
		&workingHours,
		&workingDays,
		&settings.MaxConcurrentAppointments,
		&settings.AdvanceBookingDays,
		&settings.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if workingHours.Valid {
		settings.WorkingHoursRaw = &workingHours.String
	}
	if workingDays.Valid {
		settings.WorkingDaysRaw = &workingDays.String
	}
	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}
