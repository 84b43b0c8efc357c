package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringplatform/backend/models"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/api/health"} {
		rec := s.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.HealthResponse
		decode(t, rec, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, Version, resp.Version)
	}

	s.store.pingErr = errors.New("connection refused")

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp models.HealthResponse
	decode(t, rec, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "unreachable", resp.Database)
}

func TestToolsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/tools", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tools []map[string]any `json:"tools"`
	}
	decode(t, rec, &resp)
	require.Len(t, resp.Tools, 3)
	assert.Equal(t, "compute_match_score", resp.Tools[0]["name"])

	rec = s.do(t, http.MethodPost, "/api/mcp", "", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
