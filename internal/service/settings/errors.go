package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when there is nothing to reset
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidInput is returned for out-of-range booking limits or ids
	ErrInvalidInput = errors.New("invalid input data")

	// ErrForbidden is returned when the user does not manage the tenant
	ErrForbidden = errors.New("access forbidden")

	// ErrInternal wraps repository failures
	ErrInternal = errors.New("service: internal error")
)
