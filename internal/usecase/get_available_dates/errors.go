package get_available_dates

import "errors"

var (
	// ErrInvalidRange is returned when to is before from or the range is too long
	ErrInvalidRange = errors.New("invalid date range")

	ErrInvalidInput = errors.New("invalid input data")

	ErrInternal = errors.New("usecase: internal error")
)
