package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers"
	getAvailableDates "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/get_available_dates"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/workinghours"
)

const (
	msgInvalidTenantID = "invalid tenant ID"
	msgInvalidDates    = "from and to are required, format YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/available-dates
// Query params: from, to (required, YYYY-MM-DD, inclusive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := handlers.TenantIDFromPath(r)
	if !ok {
		h.logger.Warn("GET /tenants/{id}/available-dates - Invalid tenant ID: %q", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	query := r.URL.Query()
	from, okFrom := workinghours.ParseDate(query.Get("from"))
	to, okTo := workinghours.ParseDate(query.Get("to"))
	if !okFrom || !okTo {
		h.logger.Warn("GET /tenants/{id}/available-dates - Invalid range: from=%q, to=%q", query.Get("from"), query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{TenantID: tenantID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidRange), errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/available-dates - Invalid request: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /tenants/{id}/available-dates - Failed to get dates: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/available-dates - Dates retrieved: tenant_id=%d, count=%d", tenantID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
