package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/bookstore/internal/transport/httpapi/handler"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Health(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Readiness(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("ready", func(t *testing.T) {
		h := handler.NewHealthHandler(map[string]handler.Pinger{"database": up, "redis": up})
		rec := httptest.NewRecorder()
		h.GetReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, map[string]string{"database": "healthy", "redis": "healthy"}, body.Checks)
	})

	t.Run("degraded", func(t *testing.T) {
		h := handler.NewHealthHandler(map[string]handler.Pinger{"database": up, "redis": down})
		rec := httptest.NewRecorder()
		h.GetReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body handler.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "unhealthy: connection refused", body.Checks["redis"])
	})
}

func TestLiveness(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.GetLiveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
}
