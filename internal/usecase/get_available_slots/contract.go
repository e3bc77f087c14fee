package get_available_slots

import (
	"context"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
)

// AppointmentRepository reads the tenant's scheduled appointments
type AppointmentRepository interface {
	GetByTenantWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// SettingsRepository reads the tenant's scheduling settings
type SettingsRepository interface {
	GetByTenantID(ctx context.Context, tenantID int64) (*domain.TenantSchedulingSettings, error)
}

// SlotsObserver records how many slots were offered
type SlotsObserver interface {
	ObserveSlots(usecase string, count int)
}

// TimeProvider returns the current time (swapped in tests)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
