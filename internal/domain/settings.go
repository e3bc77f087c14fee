package domain

import "time"

// TenantSchedulingSettings is what the settings store persists for a tenant.
// WorkingHoursRaw and WorkingDaysRaw hold whatever shape was saved historically
// (JSON object, legacy JSON array, comma-separated days, ...); nil means the column is NULL.
type TenantSchedulingSettings struct {
	TenantID                  int64
	WorkingHoursRaw           *string
	WorkingDaysRaw            *string
	MaxConcurrentAppointments int
	AdvanceBookingDays        int // 0 = unlimited
	MinBookingNoticeMinutes   int
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// DefaultSchedulingSettings is used when a tenant never saved its settings.
func DefaultSchedulingSettings(tenantID int64) *TenantSchedulingSettings {
	return &TenantSchedulingSettings{
		TenantID:                  tenantID,
		MaxConcurrentAppointments: DefaultMaxConcurrentAppointments,
		AdvanceBookingDays:        DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes:   DefaultMinBookingNoticeMinutes,
	}
}

// HasAdvanceBookingLimit reports whether bookings are capped at AdvanceBookingDays ahead
func (s *TenantSchedulingSettings) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// RawWorkingHours returns the stored working hours as an untyped value for the normalizer.
func (s *TenantSchedulingSettings) RawWorkingHours() interface{} {
	if s.WorkingHoursRaw == nil {
		return nil
	}
	return *s.WorkingHoursRaw
}

// RawWorkingDays returns the stored working days as an untyped value for the normalizer.
func (s *TenantSchedulingSettings) RawWorkingDays() interface{} {
	if s.WorkingDaysRaw == nil {
		return nil
	}
	return *s.WorkingDaysRaw
}
