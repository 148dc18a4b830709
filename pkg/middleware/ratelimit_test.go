package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hit(h http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/cart/items", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit_WithinBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	handler := RateLimit(ctx, 10, 10, discardLogger())(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "192.168.1.1:1234"), "request %d", i+1)
	}
}

func TestRateLimit_ExceedingBurst(t *testing.T) {
	store := newVisitorStore(0.001, 2, time.Minute)
	handler := rateLimitWith(store, discardLogger())(okHandler())

	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimit_IndependentPerIP(t *testing.T) {
	store := newVisitorStore(0.001, 1, time.Minute)
	handler := rateLimitWith(store, discardLogger())(okHandler())

	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.2:1"))
}

func TestRateLimit_DisabledWhenRPSZero(t *testing.T) {
	handler := RateLimit(context.Background(), 0, 0, discardLogger())(okHandler())
	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1"))
	}
}

func TestVisitorStore_CleanupEvictsIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newVisitorStore(1, 1, time.Minute)
	store.now = func() time.Time { return now }

	store.limiter("10.0.0.1")
	now = now.Add(30 * time.Second)
	store.limiter("10.0.0.2")

	now = now.Add(45 * time.Second)
	store.cleanup()

	assert.Equal(t, 1, store.size())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "203.0.113.5:443", "203.0.113.5"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "garbage, 198.51.100.7, 10.0.0.1"}, "10.0.0.9:1", "198.51.100.7"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.8 "}, "10.0.0.9:1", "198.51.100.8"},
		{"remote without port", nil, "203.0.113.5", "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
