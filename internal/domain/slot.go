package domain

import "github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"

// AvailableSlot represents a time slot offered for booking
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int // Free technicians/spots
	TotalSpots      int // Configured concurrent appointments
}

// IsFull returns true if the slot has no available spots
func (s AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// OccupancyRate is the share of taken spots, 0 to 100
func (s AvailableSlot) OccupancyRate() float64 {
	if s.TotalSpots <= 0 {
		return 0
	}
	return float64(s.TotalSpots-s.AvailableSpots) * 100 / float64(s.TotalSpots)
}
