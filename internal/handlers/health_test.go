package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthHandler_Health(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Database available", func(t *testing.T) {
		handler := NewHealthHandler(pingerStub{}, logger)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "ok", result.Status)
		assert.Equal(t, "ok", result.Database)
	})

	t.Run("Database unavailable", func(t *testing.T) {
		handler := NewHealthHandler(pingerStub{err: errors.New("connection refused")}, logger)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var result HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "degraded", result.Status)
		assert.Equal(t, "unavailable", result.Database)
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Ready", func(t *testing.T) {
		handler := NewHealthHandler(pingerStub{}, logger)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()

		handler.Ready(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("Not ready", func(t *testing.T) {
		handler := NewHealthHandler(pingerStub{err: errors.New("connection refused")}, logger)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()

		handler.Ready(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
