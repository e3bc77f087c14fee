package manager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/psqlbuilder"
)

const tableName = "tenant_managers"

// Repository answers which users manage a tenant
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsManager reports whether userID is listed as a manager of tenantID
func (r *Repository) IsManager(ctx context.Context, tenantID, userID int64) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"tenant_id": tenantID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsManager - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsManager - execute select: %v", ErrExecQuery, err)
	}

	return true, nil
}
