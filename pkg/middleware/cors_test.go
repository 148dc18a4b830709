package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serveCORS(cfg CORSConfig, method, origin string) *httptest.ResponseRecorder {
	handler := CORS(cfg)(okHandler())
	req := httptest.NewRequest(method, "/api/v1/session", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORS_DevelopmentAllowsAnyOrigin(t *testing.T) {
	rec := serveCORS(CORSConfig{Environment: "development"}, http.MethodGet, "https://shop.example")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS_ProductionAllowedOrigin(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"https://lartisan.example", " https://admin.lartisan.example"}, Environment: "production"}

	rec := serveCORS(cfg, http.MethodGet, "https://admin.lartisan.example")
	assert.Equal(t, "https://admin.lartisan.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_ProductionRejectedOrigin(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"https://lartisan.example"}, Environment: "production"}

	rec := serveCORS(cfg, http.MethodGet, "https://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS_WildcardInListAllowsAll(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"https://lartisan.example", "*"}, Environment: "production"}

	rec := serveCORS(cfg, http.MethodGet, "https://anything.example")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	reached := false
	handler := CORS(DefaultCORSConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/session/cart/items", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, reached)
}

func TestCORS_DefaultsIncludeSessionHeader(t *testing.T) {
	rec := serveCORS(CORSConfig{Environment: "development"}, http.MethodGet, "")

	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), SessionHeader)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_CredentialsOnlyForMatchedOrigin(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"https://lartisan.example"}, AllowCredentials: true, Environment: "production"}

	rec := serveCORS(cfg, http.MethodGet, "https://lartisan.example")
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = serveCORS(CORSConfig{AllowCredentials: true, Environment: "development"}, http.MethodGet, "https://x.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Contains(t, cfg.ExposedHeaders, CorrelationHeader)
	assert.Equal(t, "development", cfg.Environment)
}
