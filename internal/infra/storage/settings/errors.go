package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the tenant never saved scheduling settings
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrConstraintViolation is returned when a CHECK constraint rejects the values
	ErrConstraintViolation = errors.New("settings.repository: constraint violation")
)
