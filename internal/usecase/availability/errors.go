package availability

import "errors"

var (
	// ErrDateInPast is returned for dates before today
	ErrDateInPast = errors.New("date is in the past")

	// ErrDateTooFarInFuture is returned when the date exceeds advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")
)
