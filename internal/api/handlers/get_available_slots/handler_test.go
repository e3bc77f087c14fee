package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	getAvailableSlots "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/get_available_slots"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/logger"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/types"
)

type fakeUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{tenantId}/available-slots", NewHandler(uc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	start, err := types.NewTimeStringFromString("09:30")
	require.NoError(t, err)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:     date,
		TenantID: 4,
		Weekday:  time.Wednesday,
		Slots:    []domain.AvailableSlot{{StartTime: start, DurationMinutes: 30, AvailableSpots: 1, TotalSpots: 2}},
	}}

	rec := serve(uc, "/api/v1/tenants/4/available-slots?date=2025-01-15")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), uc.lastReq.TenantID)
	assert.True(t, date.Equal(uc.lastReq.Date))

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-01-15", body.Date)
	assert.Equal(t, 3, body.Weekday)
	assert.Equal(t, []AvailableSlot{{StartTime: "09:30", DurationMinutes: 30, AvailableSpots: 1, TotalSpots: 2, OccupancyRate: 50}}, body.Slots)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"bad tenant", "/api/v1/tenants/abc/available-slots?date=2025-01-15", nil, http.StatusBadRequest},
		{"missing date", "/api/v1/tenants/4/available-slots", nil, http.StatusBadRequest},
		{"malformed date", "/api/v1/tenants/4/available-slots?date=15-01-2025", nil, http.StatusBadRequest},
		{"past date", "/api/v1/tenants/4/available-slots?date=2025-01-15", getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"too far", "/api/v1/tenants/4/available-slots?date=2025-01-15", getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"internal", "/api/v1/tenants/4/available-slots?date=2025-01-15", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
