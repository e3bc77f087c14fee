package get_available_slots

import (
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
)

// Request asks for the bookable slots of one date
type Request struct {
	TenantID int64
	Date     time.Time // calendar date, time of day ignored
}

// Response lists the slots of the date with their remaining capacity
type Response struct {
	Date     time.Time
	TenantID int64
	Weekday  time.Weekday
	Slots    []domain.AvailableSlot
}
