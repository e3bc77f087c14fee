package manager

import "errors"

var (
	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("manager.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails
	ErrExecQuery = errors.New("manager.repository: failed to execute query")
)
