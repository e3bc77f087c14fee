package get_available_slots

import (
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	getAvailableSlots "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string          `json:"date"`
	TenantID int64           `json:"tenantId"`
	Weekday  int             `json:"weekday"`
	Slots    []AvailableSlot `json:"slots"`
}

type AvailableSlot struct {
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	AvailableSpots  int     `json:"availableSpots"`
	TotalSpots      int     `json:"totalSpots"`
	OccupancyRate   float64 `json:"occupancyRate"`
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
			OccupancyRate:   slot.OccupancyRate(),
		}
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		TenantID: resp.TenantID,
		Weekday:  int(resp.Weekday),
		Slots:    slots,
	}
}
