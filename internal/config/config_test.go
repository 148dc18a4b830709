package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.HTTPPort)
	assert.Equal(t, StoreMemory, cfg.SessionStore)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, 500*time.Millisecond, cfg.AddToCartDelay)
	assert.Equal(t, 750*time.Millisecond, cfg.CheckoutDelay)
	assert.False(t, cfg.EventsEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 1.0, cfg.OTELSampleRate)
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_PORT", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_InvalidOTELSampleRate(t *testing.T) {
	t.Setenv("OTEL_SAMPLE_RATE", "2.0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OTEL_SAMPLE_RATE must be between 0.0 and 1.0")
}

func TestLoad_CustomDelays(t *testing.T) {
	t.Setenv("ADD_TO_CART_DELAY", "0s")
	t.Setenv("CHECKOUT_DELAY", "2s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Zero(t, cfg.AddToCartDelay)
	assert.Equal(t, 2*time.Second, cfg.CheckoutDelay)
}

func TestLoadFromMap(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		wantErr string
	}{
		{"redis store", map[string]string{"SESSION_STORE": " Redis "}, ""},
		{"unknown store", map[string]string{"SESSION_STORE": "etcd"}, "SESSION_STORE must be"},
		{"zero ttl", map[string]string{"SESSION_TTL_HOURS": "0"}, "SESSION_TTL_HOURS must be positive"},
		{"negative delay", map[string]string{"CHECKOUT_DELAY": "-1s"}, "must not be negative"},
		{"zero publish timeout", map[string]string{"EVENT_PUBLISH_TIMEOUT": "0s"}, "EVENT_PUBLISH_TIMEOUT"},
		{"negative rate", map[string]string{"RATE_LIMIT_RPS": "-1"}, "must not be negative"},
		{"rate without burst", map[string]string{"RATE_LIMIT_RPS": "5", "RATE_LIMIT_BURST": "0"}, "RATE_LIMIT_BURST"},
		{"rate limiting off", map[string]string{"RATE_LIMIT_RPS": "0", "RATE_LIMIT_BURST": "0"}, ""},
		{"bad duration", map[string]string{"ADD_TO_CART_DELAY": "soon"}, "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromMap(tt.values)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}

	cfg, err := LoadFromMap(map[string]string{"SESSION_STORE": "REDIS", "REDIS_DB": "3"})
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.SessionStore)
	assert.Equal(t, 3, cfg.RedisDB)
}
