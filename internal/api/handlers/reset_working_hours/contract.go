package reset_working_hours

import "context"

type SettingsService interface {
	ResetWorkingHours(ctx context.Context, tenantID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
