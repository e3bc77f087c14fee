package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	settingsRepo "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/infra/storage/settings"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/availability"
)

const usecaseName = "get_available_slots"

// UseCase returns bookable slots of a tenant for one date
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	observer        SlotsObserver
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	observer SlotsObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		observer:        observer,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider replaces the clock
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, date=%s", req.TenantID, req.Date.Format(domain.DateFormat))

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Settings, defaults when the tenant never saved any
	settings, err := uc.settingsRepo.GetByTenantID(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSchedulingSettings(req.TenantID)
		uc.logger.Info("GetAvailableSlots: using default settings for tenant=%d", req.TenantID)
	}

	// 3. Date limits
	if err := validateDate(req.Date, now, settings); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:     req.Date,
		TenantID: req.TenantID,
		Weekday:  req.Date.Weekday(),
		Slots:    []domain.AvailableSlot{},
	}

	// 4. Working-hours grid for the date
	timeSlots := availability.DaySlots(settings, req.Date, now)
	if len(timeSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: no working slots on %s", req.Date.Format(domain.DateFormat))
		uc.observer.ObserveSlots(usecaseName, 0)
		return resp, nil
	}

	// 5. Active appointments of that date
	filter := domain.AppointmentsFilter{
		TenantID:        req.TenantID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}
	appointments, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Capacity per slot
	resp.Slots = availability.CalculateAvailableSpots(timeSlots, appointments, settings.MaxConcurrentAppointments)
	uc.observer.ObserveSlots(usecaseName, len(resp.Slots))

	uc.logger.Info("GetAvailableSlots: generated %d slots for tenant=%d, date=%s",
		len(resp.Slots), req.TenantID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
