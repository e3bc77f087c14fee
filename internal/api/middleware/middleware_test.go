package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/logger"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/metrics"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuth(t *testing.T) {
	var gotUserID int64
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not a number", "abc", http.StatusUnauthorized},
		{"zero", "0", http.StatusUnauthorized},
		{"valid", "42", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
	assert.Equal(t, int64(42), gotUserID)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func newTestLimiter(t *testing.T, trusted ...string) *RateLimiter {
	t.Helper()
	rl, err := NewRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		Burst:             2,
		TrustedProxies:    trusted,
		IdleTTL:           time.Minute,
	}, logger.NewNop())
	require.NoError(t, err)
	return rl
}

func TestRateLimiter(t *testing.T) {
	h := newTestLimiter(t, "10.0.0.0/8").Middleware(okHandler)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.2")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("1.1.1.1"))
	assert.Equal(t, http.StatusNoContent, send("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("1.1.1.1"))
	assert.Equal(t, http.StatusNoContent, send("2.2.2.2"), "buckets are per client")
}

func TestRateLimiter_IgnoresSpoofedForwardedFor(t *testing.T) {
	h := newTestLimiter(t, "10.0.0.0/8").Middleware(okHandler)

	send := func(spoofed string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set("X-Forwarded-For", spoofed)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("1.1.1.1"))
	assert.Equal(t, http.StatusNoContent, send("2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("3.3.3.3"), "rotating the header does not reset the bucket")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := newTestLimiter(t)
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("1.1.1.1")
	rl.getLimiter("2.2.2.2")
	require.Len(t, rl.visitors, 2)

	now = now.Add(30 * time.Second)
	rl.getLimiter("2.2.2.2")
	assert.Len(t, rl.visitors, 2, "no sweep before the idle TTL")

	now = now.Add(45 * time.Second)
	rl.getLimiter("3.3.3.3")
	assert.Len(t, rl.visitors, 2)
	assert.NotContains(t, rl.visitors, "1.1.1.1")
	assert.Contains(t, rl.visitors, "2.2.2.2")
	assert.Contains(t, rl.visitors, "3.3.3.3")
}

func TestClientIP(t *testing.T) {
	rl := newTestLimiter(t, "10.0.0.0/8", "192.168.1.5")

	direct := httptest.NewRequest(http.MethodGet, "/", nil)
	direct.RemoteAddr = "8.8.4.4:5555"
	direct.Header.Set("X-Forwarded-For", "1.2.3.4")
	direct.Header.Set("X-Real-IP", "1.2.3.4")
	assert.Equal(t, "8.8.4.4", rl.clientIP(direct), "headers from untrusted peers are ignored")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:5555"
	assert.Equal(t, "192.168.1.5", rl.clientIP(req))

	req.Header.Set("X-Real-IP", " 172.16.0.9 ")
	assert.Equal(t, "172.16.0.9", rl.clientIP(req))

	req.Header.Set("X-Forwarded-For", "1.2.3.4, 8.8.8.8, 10.1.1.1")
	assert.Equal(t, "8.8.8.8", rl.clientIP(req), "rightmost untrusted hop")
}

func TestNewRateLimiter_InvalidProxy(t *testing.T) {
	_, err := NewRateLimiter(RateLimiterConfig{TrustedProxies: []string{"not-an-ip"}}, logger.NewNop())
	assert.Error(t, err)

	_, err = NewRateLimiter(RateLimiterConfig{TrustedProxies: []string{"10.0.0.0/99"}}, logger.NewNop())
	assert.Error(t, err)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New("test")
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Handle("/tenants/{tenantId}", okHandler).Methods(http.MethodGet)

	for _, path := range []string{"/tenants/1", "/tenants/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var pb dto.Metric
	require.NoError(t, m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/tenants/{tenantId}", "204").Write(&pb))
	assert.Equal(t, float64(2), pb.GetCounter().GetValue())
}
