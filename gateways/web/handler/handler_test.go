package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/apriori/backend/config/web"
)

func newTestHandler() Handler {
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewHandler(cfg, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHealthHandler(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.HealthHandler(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["status"])
}

func TestOutboundCallRequiresAuth(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.OutboundCallHandler(w, httptest.NewRequest(http.MethodPost, "/api/v1/interviews/outbound", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
