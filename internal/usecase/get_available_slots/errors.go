package get_available_slots

import "errors"

var (
	// ErrInvalidDate is returned for dates in the past
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture is returned when the date exceeds advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	ErrInvalidInput = errors.New("invalid input data")

	ErrInternal = errors.New("usecase: internal error")
)
