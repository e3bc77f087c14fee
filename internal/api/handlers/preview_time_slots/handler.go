package preview_time_slots

import (
	"errors"
	"net/http"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	service PreviewService
	logger  Logger
}

func NewHandler(service PreviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/working-hours/time-slots
// Body: {"workingHours": any, "workingDays": any, "date": "YYYY-MM-DD"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-hours/time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.PreviewTimeSlots(&req)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("POST /working-hours/time-slots - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /working-hours/time-slots - Failed to preview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /working-hours/time-slots - Preview generated: date=%s, slots_count=%d", result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
