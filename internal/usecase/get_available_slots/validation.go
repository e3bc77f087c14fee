package get_available_slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/availability"
)

func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate maps availability date errors onto this use case's errors
func validateDate(date, now time.Time, settings *domain.TenantSchedulingSettings) error {
	err := availability.ValidateDate(date, now, settings)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, availability.ErrDateInPast):
		return ErrInvalidDate
	case errors.Is(err, availability.ErrDateTooFarInFuture):
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, settings.AdvanceBookingDays)
	default:
		return err
	}
}
