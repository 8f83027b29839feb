package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobportal-backend/config"
	"go-jobportal-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newTestRouterDeps() RouterDeps {
	logger.Init()
	return RouterDeps{
		Config: &config.Config{
			Env:                     "test",
			JWTSecret:               "router-test-secret",
			RateLimitWindowSeconds:  60,
			RateLimitLoginThreshold: 100,
		},
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := NewRouter(newTestRouterDeps())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Job Portal API is running", body.Message)
}

func TestUnknownAPIRouteEchoesPathAndMethod(t *testing.T) {
	r := NewRouter(newTestRouterDeps())

	req := httptest.NewRequest(http.MethodDelete, "/api/not-a-route", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Path    string `json:"path"`
		Method  string `json:"method"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "API endpoint not found", body.Message)
	assert.Equal(t, "/api/not-a-route", body.Path)
	assert.Equal(t, http.MethodDelete, body.Method)
}
