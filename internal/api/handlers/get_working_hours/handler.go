package get_working_hours

import (
	"net/http"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
)

const msgInvalidTenantID = "invalid tenant ID"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := handlers.TenantIDFromPath(r)
	if !ok {
		h.logger.Warn("GET /tenants/{id}/working-hours - Invalid tenant ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	result, err := h.service.GetWorkingHours(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /tenants/{id}/working-hours - Failed to get working hours: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{id}/working-hours - Working hours retrieved: tenant_id=%d, default=%t", tenantID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
