package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	settingsRepo "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/infra/storage/settings"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings/models"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/workinghours"
)

// Service manages tenant working hours and booking limits
type Service struct {
	settingsRepo SettingsRepository
	managerRepo  ManagerRepository
	logger       Logger
}

func NewService(settingsRepo SettingsRepository, managerRepo ManagerRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		managerRepo:  managerRepo,
		logger:       logger,
	}
}

// GetWorkingHours returns the tenant's normalized working hours.
// A tenant without stored settings gets the defaults, never an error.
func (s *Service) GetWorkingHours(ctx context.Context, tenantID int64) (*models.WorkingHoursResponse, error) {
	s.logger.Info("GetWorkingHours: fetching settings for tenant=%d", tenantID)

	if tenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	stored, isDefault, err := s.loadSettings(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	config := workinghours.NormalizeWorkingHoursConfig(stored.RawWorkingHours(), stored.RawWorkingDays())
	schedule := workinghours.ScheduleFromConfig(config)

	s.logger.Info("GetWorkingHours: tenant=%d default=%t enabled_days=%v", tenantID, isDefault, config.EnabledWeekdays())
	return models.FromDomainSettings(stored, config, schedule, isDefault), nil
}

// UpdateWorkingHours normalizes the submitted configuration and stores it in canonical form.
// When WorkingDays is present it decides which weekdays are enabled, overriding any
// per-day enabled flag in WorkingHours.
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: updating tenant=%d by user=%d", req.TenantID, req.UserID)

	if req.TenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if err := s.checkManager(ctx, "UpdateWorkingHours", req.TenantID, req.UserID); err != nil {
		return nil, err
	}

	stored, _, err := s.loadSettings(ctx, req.TenantID)
	if err != nil {
		s.logger.Error("UpdateWorkingHours: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	updated := *stored
	req.ApplyLimits(&updated)
	if err := validateLimits(&updated); err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	hoursRaw := stored.RawWorkingHours()
	if req.WorkingHours != nil {
		hoursRaw = req.WorkingHours
	}
	daysRaw := stored.RawWorkingDays()
	if req.WorkingDays != nil {
		daysRaw = req.WorkingDays
	}

	config := workinghours.NormalizeWorkingHoursConfig(hoursRaw, daysRaw)
	if req.WorkingDays != nil {
		config = withEnabledDays(config, workinghours.NormalizeWorkingHoursConfig(nil, req.WorkingDays).EnabledWeekdays())
	}

	hoursJSON, daysJSON, err := encodeCanonical(config)
	if err != nil {
		s.logger.Error("UpdateWorkingHours: failed to encode config for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - encode config: %v", ErrInternal, err)
	}
	updated.WorkingHoursRaw = &hoursJSON
	updated.WorkingDaysRaw = &daysJSON

	saved, err := s.settingsRepo.Upsert(ctx, &updated)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrConstraintViolation) {
			s.logger.Warn("UpdateWorkingHours: constraint violation for tenant=%d: %v", req.TenantID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("UpdateWorkingHours: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: successfully updated tenant=%d enabled_days=%v", req.TenantID, config.EnabledWeekdays())
	return models.FromDomainSettings(saved, config, workinghours.ScheduleFromConfig(config), false), nil
}

// ResetWorkingHours deletes stored settings so the tenant falls back to defaults
func (s *Service) ResetWorkingHours(ctx context.Context, tenantID int64, userID int64) error {
	s.logger.Info("ResetWorkingHours: resetting tenant=%d by user=%d", tenantID, userID)

	if tenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if err := s.checkManager(ctx, "ResetWorkingHours", tenantID, userID); err != nil {
		return err
	}

	if err := s.settingsRepo.DeleteByTenantID(ctx, tenantID); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("ResetWorkingHours: tenant=%d has no stored settings", tenantID)
			return ErrSettingsNotFound
		}
		s.logger.Error("ResetWorkingHours: repository error for tenant=%d: %v", tenantID, err)
		return fmt.Errorf("%w: ResetWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetWorkingHours: successfully reset tenant=%d", tenantID)
	return nil
}

// PreviewTimeSlots runs the slot generator over a configuration that is not stored anywhere
func (s *Service) PreviewTimeSlots(req *models.PreviewRequest) (*models.PreviewResponse, error) {
	date, ok := workinghours.ParseDate(req.Date)
	if !ok {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	schedule := workinghours.BuildScheduleByDay(req.WorkingHours, req.WorkingDays)
	day := schedule[date.Weekday()]
	slots := workinghours.SlotsForSchedule(day)

	s.logger.Info("PreviewTimeSlots: date=%s weekday=%d slots=%d", date.Format(domain.DateFormat), date.Weekday(), len(slots))
	return &models.PreviewResponse{
		Date:     date.Format(domain.DateFormat),
		Weekday:  int(date.Weekday()),
		Slots:    slots,
		Schedule: day,
	}, nil
}

// checkManager returns ErrForbidden unless userID manages tenantID
func (s *Service) checkManager(ctx context.Context, op string, tenantID, userID int64) error {
	ok, err := s.managerRepo.IsManager(ctx, tenantID, userID)
	if err != nil {
		s.logger.Error("%s: failed to check manager for tenant=%d user=%d: %v", op, tenantID, userID, err)
		return fmt.Errorf("%w: %s - check manager: %v", ErrInternal, op, err)
	}
	if !ok {
		s.logger.Warn("%s: user=%d is not a manager of tenant=%d", op, userID, tenantID)
		return ErrForbidden
	}
	return nil
}

// loadSettings returns stored settings, or defaults with isDefault=true
func (s *Service) loadSettings(ctx context.Context, tenantID int64) (*domain.TenantSchedulingSettings, bool, error) {
	stored, err := s.settingsRepo.GetByTenantID(ctx, tenantID)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return domain.DefaultSchedulingSettings(tenantID), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return stored, false, nil
}

// validateLimits checks booking limits against business ranges
func validateLimits(s *domain.TenantSchedulingSettings) error {
	if s.MaxConcurrentAppointments < domain.MinConcurrentAppointments || s.MaxConcurrentAppointments > domain.MaxConcurrentAppointments {
		return fmt.Errorf("%w: maxConcurrentAppointments must be between %d and %d",
			ErrInvalidInput, domain.MinConcurrentAppointments, domain.MaxConcurrentAppointments)
	}
	if s.AdvanceBookingDays < domain.MinAdvanceBookingDays || s.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}
	if s.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || s.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}
	return nil
}

func withEnabledDays(config domain.WorkingHoursConfig, enabled []time.Weekday) domain.WorkingHoursConfig {
	set := make(map[time.Weekday]bool, len(enabled))
	for _, d := range enabled {
		set[d] = true
	}

	days := make(map[time.Weekday]domain.WorkingDayConfig, len(config.Days))
	for d, day := range config.Days {
		day.Enabled = set[d]
		days[d] = day
	}
	return domain.WorkingHoursConfig{Days: days}
}

func encodeCanonical(config domain.WorkingHoursConfig) (string, string, error) {
	hours, err := json.Marshal(config)
	if err != nil {
		return "", "", err
	}
	days, err := json.Marshal(config.EnabledWeekdays())
	if err != nil {
		return "", "", err
	}
	return string(hours), string(days), nil
}
