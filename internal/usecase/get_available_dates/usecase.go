package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	settingsRepo "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/infra/storage/settings"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/availability"
)

const usecaseName = "get_available_dates"

// UseCase returns the dates of a range that still have at least one free slot.
// Calendar widgets use it to grey out full or closed days.
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	observer        SlotsObserver
	timeProvider    TimeProvider
	logger          Logger
	maxRangeDays    int
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	observer SlotsObserver,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		observer:        observer,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		maxRangeDays:    maxRangeDays,
	}
}

func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: tenant=%d, from=%s, to=%s",
		req.TenantID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := validateRequest(req, uc.maxRangeDays); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	settings, err := uc.settingsRepo.GetByTenantID(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableDates: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSchedulingSettings(req.TenantID)
	}

	resp := &Response{
		TenantID: req.TenantID,
		From:     req.From,
		To:       req.To,
		Dates:    []time.Time{},
	}

	// One query for the whole range, grouped by date
	filter := domain.AppointmentsFilter{
		TenantID:  req.TenantID,
		StartDate: &req.From,
		EndDate:   &req.To,
	}
	appointments, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	byDate := groupByDate(appointments)

	offered := 0
	for date := req.From; !date.After(req.To); date = date.AddDate(0, 0, 1) {
		if availability.ValidateDate(date, now, settings) != nil {
			continue
		}

		timeSlots := availability.DaySlots(settings, date, now)
		if len(timeSlots) == 0 {
			continue
		}

		slots := availability.CalculateAvailableSpots(timeSlots, byDate[date.Format(domain.DateFormat)], settings.MaxConcurrentAppointments)
		if availability.HasFreeSpot(slots) {
			resp.Dates = append(resp.Dates, date)
			offered += len(slots)
		}
	}
	uc.observer.ObserveSlots(usecaseName, offered)

	uc.logger.Info("GetAvailableDates: %d available dates for tenant=%d", len(resp.Dates), req.TenantID)
	return resp, nil
}

func groupByDate(appointments []*domain.Appointment) map[string][]*domain.Appointment {
	result := make(map[string][]*domain.Appointment)
	for _, a := range appointments {
		key := a.ScheduledDate.Format(domain.DateFormat)
		result[key] = append(result[key], a)
	}
	return result
}

// daysBetween counts calendar days from a to b
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
