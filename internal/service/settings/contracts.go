package settings

import (
	"context"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
)

// SettingsRepository persists tenant scheduling settings
type SettingsRepository interface {
	GetByTenantID(ctx context.Context, tenantID int64) (*domain.TenantSchedulingSettings, error)
	Upsert(ctx context.Context, settings *domain.TenantSchedulingSettings) (*domain.TenantSchedulingSettings, error)
	DeleteByTenantID(ctx context.Context, tenantID int64) error
}

// ManagerRepository tells whether a user may change a tenant's settings
type ManagerRepository interface {
	IsManager(ctx context.Context, tenantID, userID int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
