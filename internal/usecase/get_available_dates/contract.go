package get_available_dates

import (
	"context"
	"time"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
)

type AppointmentRepository interface {
	GetByTenantWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

type SettingsRepository interface {
	GetByTenantID(ctx context.Context, tenantID int64) (*domain.TenantSchedulingSettings, error)
}

type SlotsObserver interface {
	ObserveSlots(usecase string, count int)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
