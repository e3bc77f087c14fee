package get_working_hours

import (
	"context"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings/models"
)

type SettingsService interface {
	GetWorkingHours(ctx context.Context, tenantID int64) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
