package reset_working_hours

import (
	"errors"
	"net/http"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/middleware"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings"
)

const (
	msgInvalidTenantID = "invalid tenant ID"
	msgMissingUserID   = "missing user ID"
	msgForbidden       = "access forbidden"
	msgNotFound        = "tenant has no custom working hours"
)

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

// Handle DELETE /api/v1/tenants/{tenantId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := handlers.TenantIDFromPath(r)
	if !ok {
		h.logger.Warn("DELETE /tenants/{id}/working-hours - Invalid tenant ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /tenants/{id}/working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.ResetWorkingHours(r.Context(), tenantID, userID); err != nil {
		switch {
		case errors.Is(err, settings.ErrForbidden):
			h.logger.Warn("DELETE /tenants/{id}/working-hours - Access forbidden: tenant_id=%d, user_id=%d", tenantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("DELETE /tenants/{id}/working-hours - Nothing to reset: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tenants/{id}/working-hours - Failed to reset: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tenants/{id}/working-hours - Working hours reset: tenant_id=%d, user_id=%d", tenantID, userID)
	w.WriteHeader(http.StatusNoContent)
}
