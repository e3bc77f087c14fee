package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
	getAvailableSlots "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/get_available_slots"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/workinghours"
)

const (
	msgInvalidTenantID = "invalid tenant ID"
	msgMissingDate     = "date is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast      = "date is in the past"
	msgDateTooFar      = "date is beyond the advance booking limit"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := handlers.TenantIDFromPath(r)
	if !ok {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid tenant ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, ok := workinghours.ParseDate(dateStr)
	if !ok {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid date format: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{TenantID: tenantID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /tenants/{id}/available-slots - Date in past: tenant_id=%d, date=%s", tenantID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /tenants/{id}/available-slots - Date too far: tenant_id=%d, date=%s", tenantID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /tenants/{id}/available-slots - Failed to get slots: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/available-slots - Slots retrieved: tenant_id=%d, date=%s, slots_count=%d",
		tenantID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
