package models

import (
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/ptr"
)

// UpdateWorkingHoursRequest replaces a tenant's working hours.
// WorkingHours and WorkingDays accept every shape the normalizer understands;
// nil fields keep the stored value.
type UpdateWorkingHoursRequest struct {
	UserID                    int64       `json:"-"`
	TenantID                  int64       `json:"-"`
	WorkingHours              interface{} `json:"workingHours,omitempty"`
	WorkingDays               interface{} `json:"workingDays,omitempty"`
	MaxConcurrentAppointments *int        `json:"maxConcurrentAppointments,omitempty"`
	AdvanceBookingDays        *int        `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes   *int        `json:"minBookingNoticeMinutes,omitempty"`
}

// ApplyLimits copies the booking limits present in the request onto s
func (r *UpdateWorkingHoursRequest) ApplyLimits(s *domain.TenantSchedulingSettings) {
	s.MaxConcurrentAppointments = ptr.Value(r.MaxConcurrentAppointments, s.MaxConcurrentAppointments)
	s.AdvanceBookingDays = ptr.Value(r.AdvanceBookingDays, s.AdvanceBookingDays)
	s.MinBookingNoticeMinutes = ptr.Value(r.MinBookingNoticeMinutes, s.MinBookingNoticeMinutes)
}

// WorkingHoursResponse is the resolved view of a tenant's working hours
type WorkingHoursResponse struct {
	TenantID                  int64                     `json:"tenantId"`
	IsDefault                 bool                      `json:"isDefault"` // tenant never saved settings
	WorkingHours              domain.WorkingHoursConfig `json:"workingHours"`
	WorkingDays               []int                     `json:"workingDays"`
	Schedule                  domain.WeeklySchedule     `json:"schedule"`
	SlotIntervalMinutes       int                       `json:"slotIntervalMinutes"`
	MaxConcurrentAppointments int                       `json:"maxConcurrentAppointments"`
	AdvanceBookingDays        int                       `json:"advanceBookingDays"`
	MinBookingNoticeMinutes   int                       `json:"minBookingNoticeMinutes"`
	UpdatedAt                 *time.Time                `json:"updatedAt,omitempty"`
}

// FromDomainSettings builds the response from stored settings and their normalized form
func FromDomainSettings(
	s *domain.TenantSchedulingSettings,
	config domain.WorkingHoursConfig,
	schedule domain.WeeklySchedule,
	isDefault bool,
) *WorkingHoursResponse {
	weekdays := config.EnabledWeekdays()
	days := make([]int, len(weekdays))
	for i, d := range weekdays {
		days[i] = int(d)
	}

	resp := &WorkingHoursResponse{
		TenantID:                  s.TenantID,
		IsDefault:                 isDefault,
		WorkingHours:              config,
		WorkingDays:               days,
		Schedule:                  schedule,
		SlotIntervalMinutes:       domain.SlotIntervalMinutes,
		MaxConcurrentAppointments: s.MaxConcurrentAppointments,
		AdvanceBookingDays:        s.AdvanceBookingDays,
		MinBookingNoticeMinutes:   s.MinBookingNoticeMinutes,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// PreviewRequest evaluates an unsaved configuration for one date
type PreviewRequest struct {
	WorkingHours interface{} `json:"workingHours"`
	WorkingDays  interface{} `json:"workingDays"`
	Date         string      `json:"date"`
}

// PreviewResponse is what a client would be offered on Date
type PreviewResponse struct {
	Date     string                    `json:"date"`
	Weekday  int                       `json:"weekday"`
	Slots    []string                  `json:"slots"`
	Schedule domain.WorkingDaySchedule `json:"schedule"`
}
