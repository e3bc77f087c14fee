package domain

import "time"

// SlotIntervalMinutes is the width of every bookable slot and the grid all times are floored to.
const SlotIntervalMinutes = 30

// Default working window and break, in minutes since midnight.
const (
	DefaultStartMinutes      = 8 * 60  // 08:00
	DefaultEndMinutes        = 18 * 60 // 18:00
	DefaultBreakStartMinutes = 12 * 60 // 12:00
	DefaultBreakEndMinutes   = 13 * 60 // 13:00

	DefaultStart      = "08:00"
	DefaultEnd        = "18:00"
	DefaultBreakStart = "12:00"
	DefaultBreakEnd   = "13:00"
)

// LatestLegacyEndMinutes caps the window derived from a legacy list of start times (23:30).
const LatestLegacyEndMinutes = 24*60 - SlotIntervalMinutes

// DefaultWorkingDays returns Monday to Saturday. A fresh slice is returned on every call.
func DefaultWorkingDays() []time.Weekday {
	return []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
	}
}

// Default booking limits
const (
	DefaultMaxConcurrentAppointments = 1
	DefaultAdvanceBookingDays        = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes   = 60 // 1 hour
)

// Business validation constants
const (
	MinConcurrentAppointments = 1
	MaxConcurrentAppointments = 100
	MinAdvanceBookingDays     = 0
	MaxAdvanceBookingDays     = 365 // 1 year
	MinBookingNoticeMinutes   = 0
	MaxBookingNoticeMinutes   = 10080 // 1 week
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses ignored when counting occupied slots.
// A fresh slice is returned on every call.
func InactiveStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		StatusCancelled,
		StatusNoShow,
	}
}
