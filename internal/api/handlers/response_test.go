package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "settings not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "settings not found"}, body)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Date string `json:"date"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2025-01-15"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "2025-01-15", v.Date)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":`))
	assert.Error(t, DecodeJSON(req, &v))
}
