package update_working_hours

import "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings/models"

// UpdateWorkingHoursRequest HTTP body. workingHours and workingDays accept any of the
// stored shapes: a {"days":{...}} object, a legacy array of start times, JSON strings,
// day lists as arrays or comma-separated strings.
type UpdateWorkingHoursRequest struct {
	WorkingHours              interface{} `json:"workingHours"`
	WorkingDays               interface{} `json:"workingDays"`
	MaxConcurrentAppointments *int        `json:"maxConcurrentAppointments"`
	AdvanceBookingDays        *int        `json:"advanceBookingDays"`
	MinBookingNoticeMinutes   *int        `json:"minBookingNoticeMinutes"`
}

func (r *UpdateWorkingHoursRequest) ToServiceRequest(tenantID, userID int64) *models.UpdateWorkingHoursRequest {
	return &models.UpdateWorkingHoursRequest{
		UserID:                    userID,
		TenantID:                  tenantID,
		WorkingHours:              r.WorkingHours,
		WorkingDays:               r.WorkingDays,
		MaxConcurrentAppointments: r.MaxConcurrentAppointments,
		AdvanceBookingDays:        r.AdvanceBookingDays,
		MinBookingNoticeMinutes:   r.MinBookingNoticeMinutes,
	}
}
