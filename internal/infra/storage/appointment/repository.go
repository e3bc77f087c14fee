package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/psqlbuilder"
)

// Repository reads scheduled tickets. Appointments are written by the ticketing
// module; availability only needs to know which slots are taken.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenantWithFilter returns the tenant's appointments ordered by date and start time
func (r *Repository) GetByTenantWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"tenant_id",
		"client_id",
		"scheduled_date",
		"start_time",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"tenant_id": filter.TenantID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"scheduled_date": filter.EndDate.Format(domain.DateFormat)})
	}

	if !filter.IncludeInactive {
		statuses := domain.InactiveStatuses()
		inactive := make([]string, len(statuses))
		for i, s := range statuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := selectBuilder.
		OrderBy("scheduled_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var a domain.Appointment
		var clientID sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.TenantID,
			&clientID,
			&a.ScheduledDate,
			&a.StartTime,
			&a.DurationMinutes,
			&a.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		if clientID.Valid {
			a.ClientID = &clientID.Int64
		}
		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
