package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingCheck(name string, err error) Check {
	return Check{Name: name, Ping: func(context.Context) error { return err }}
}

func serveHealth(t *testing.T, h http.HandlerFunc) (int, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec.Code, resp
}

func TestLive_IgnoresChecks(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("v1", pingCheck("database", errors.New("down")))

	code, resp := serveHealth(t, h.Live)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReadyAndHealth(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	tests := []struct {
		name       string
		checks     []Check
		wantCode   int
		wantStatus string
		wantComps  map[string]string
	}{
		{
			name:       "all up",
			checks:     []Check{pingCheck("database", nil), pingCheck("redis", nil)},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantComps:  map[string]string{"database": "ok", "redis": "ok"},
		},
		{
			name:       "database down",
			checks:     []Check{pingCheck("database", refused), pingCheck("redis", nil)},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "down",
			wantComps:  map[string]string{"database": "down", "redis": "ok"},
		},
		{
			name:       "redis down",
			checks:     []Check{pingCheck("database", nil), pingCheck("redis", refused)},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "down",
			wantComps:  map[string]string{"database": "ok", "redis": "down"},
		},
		{
			name:       "no checks",
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantComps:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewHealthHandler("v1.0.0", tt.checks...)

			code, resp := serveHealth(t, h.Ready)
			assert.Equal(t, tt.wantCode, code, "ready")
			assert.Equal(t, tt.wantStatus, resp.Status, "ready")
			assert.Empty(t, resp.Components, "ready exposes no components")

			code, resp = serveHealth(t, h.Health)
			assert.Equal(t, tt.wantCode, code, "health")
			assert.Equal(t, tt.wantStatus, resp.Status, "health")
			assert.Equal(t, "v1.0.0", resp.Version)
			require.Len(t, resp.Components, len(tt.wantComps))
			for name, want := range tt.wantComps {
				comp := resp.Components[name]
				assert.Equal(t, want, comp.Status, name)
				assert.Equal(t, want == "ok", comp.Latency != "", "%s latency only when up", name)
			}
		})
	}
}

func TestHealth_ChecksShareDeadline(t *testing.T) {
	t.Parallel()

	var deadlines int
	check := Check{Name: "database", Ping: func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); ok {
			deadlines++
		}
		return nil
	}}
	h := NewHealthHandler("v1", check)

	code, _ := serveHealth(t, h.Health)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, deadlines)
}
