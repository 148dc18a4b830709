package config

import (
	"fmt"
	"strings"
	"time"

	pkgconfig "github.com/QuantumCastro/L-Artisan/pkg/config"
)

// Session store kinds.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort     int  `env:"STOREFRONT_HTTP_PORT" envDefault:"8090"`
	CookieSecure bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`

	// Sessions
	SessionStore    string `env:"SESSION_STORE" envDefault:"memory"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" envDefault:"24"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Simulated processing delays
	AddToCartDelay time.Duration `env:"ADD_TO_CART_DELAY" envDefault:"500ms"`
	CheckoutDelay  time.Duration `env:"CHECKOUT_DELAY" envDefault:"750ms"`

	// Kafka
	EventsEnabled       bool          `env:"EVENTS_ENABLED" envDefault:"false"`
	KafkaBrokers        []string      `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	EventPublishTimeout time.Duration `env:"EVENT_PUBLISH_TIMEOUT" envDefault:"2s"`

	// Rate limiting, 0 disables
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	PprofAllowedCIDRs  []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.0/8,::1/128" envSeparator:","`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// SessionTTL returns the session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromMap reads configuration from values instead of the environment.
func LoadFromMap(values map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.LoadFromMap(cfg, values); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	if c.SessionStore != StoreMemory && c.SessionStore != StoreRedis {
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, c.SessionStore)
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	if c.AddToCartDelay < 0 || c.CheckoutDelay < 0 {
		return fmt.Errorf("ADD_TO_CART_DELAY and CHECKOUT_DELAY must not be negative")
	}
	if c.EventsEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_ENABLED is set")
	}
	if c.EventPublishTimeout <= 0 {
		return fmt.Errorf("EVENT_PUBLISH_TIMEOUT must be positive, got %s", c.EventPublishTimeout)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is on")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %g", c.OTELSampleRate)
	}
	return nil
}
