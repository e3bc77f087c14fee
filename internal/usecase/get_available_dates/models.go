package get_available_dates

import "time"

// Request asks which dates in [From, To] still have a free slot
type Request struct {
	TenantID int64
	From     time.Time
	To       time.Time
}

// Response lists bookable dates in ascending order
type Response struct {
	TenantID int64
	From     time.Time
	To       time.Time
	Dates    []time.Time
}
