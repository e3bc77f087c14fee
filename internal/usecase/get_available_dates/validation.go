package get_available_dates

import "fmt"

func validateRequest(req *Request, maxRangeDays int) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to is before from", ErrInvalidRange)
	}

	if days := daysBetween(req.From, req.To) + 1; days > maxRangeDays {
		return fmt.Errorf("%w: range of %d days exceeds %d", ErrInvalidRange, days, maxRangeDays)
	}

	return nil
}
