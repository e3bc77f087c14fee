package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/middleware"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings"
)

const (
	msgInvalidTenantID    = "invalid tenant ID"
	msgInvalidRequestBody = "invalid request body"
	msgForbidden          = "access forbidden"
	msgMissingUserID      = "missing user ID"
	msgInvalidData        = "invalid working hours settings"
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

// Handle PUT /api/v1/tenants/{tenantId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := handlers.TenantIDFromPath(r)
	if !ok {
		h.logger.Warn("PUT /tenants/{id}/working-hours - Invalid tenant ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /tenants/{id}/working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWorkingHours(r.Context(), req.ToServiceRequest(tenantID, userID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrForbidden):
			h.logger.Warn("PUT /tenants/{id}/working-hours - Access forbidden: tenant_id=%d, user_id=%d", tenantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /tenants/{id}/working-hours - Invalid data: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidData+": "+err.Error())

		default:
			h.logger.Error("PUT /tenants/{id}/working-hours - Failed to update: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/{id}/working-hours - Working hours updated: tenant_id=%d, user_id=%d, days=%v",
		tenantID, userID, result.WorkingDays)
	handlers.RespondJSON(w, http.StatusOK, result)
}
