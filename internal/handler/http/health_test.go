package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogkeeper/models"
)

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "test", resp.Environment)
	assert.NotEmpty(t, resp.Timestamp)
	assert.NotEmpty(t, resp.Uptime)
	assert.Contains(t, resp.Memory.RSS, "MB")
	assert.Contains(t, resp.Memory.HeapUsed, "MB")
	assert.Contains(t, resp.Memory.HeapTotal, "MB")
}
