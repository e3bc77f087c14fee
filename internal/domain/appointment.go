package domain

import (
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"
)

// AppointmentStatus represents the status of a scheduled ticket
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// Appointment is a ticket scheduled into a tenant's calendar.
// Only the fields needed to compute occupancy are loaded here.
type Appointment struct {
	ID              int64
	TenantID        int64
	ClientID        *int64 // NULL for walk-in / self-service bookings without a registered client
	ScheduledDate   time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	for _, s := range InactiveStatuses() {
		if a.Status == s {
			return false
		}
	}
	return true
}

// EndMinutes returns the minute-of-day the appointment ends at. It may exceed one day.
func (a *Appointment) EndMinutes() int {
	return a.StartTime.Minutes() + a.DurationMinutes
}

// AppointmentsFilter selects appointments of a tenant
type AppointmentsFilter struct {
	TenantID        int64
	StartDate       *time.Time // inclusive, nil = no lower bound
	EndDate         *time.Time // inclusive, nil = no upper bound
	IncludeInactive bool       // include cancelled and no-show appointments
}
