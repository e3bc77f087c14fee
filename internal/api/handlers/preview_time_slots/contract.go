package preview_time_slots

import "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings/models"

type PreviewService interface {
	PreviewTimeSlots(req *models.PreviewRequest) (*models.PreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
