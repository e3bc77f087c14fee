package appointment

import "errors"

var (
	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
