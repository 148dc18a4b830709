package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct.
// The struct should use `env` tags to define mappings.
//
// Example:
//
//	type Config struct {
//	    Port         int           `env:"STOREFRONT_HTTP_PORT" envDefault:"8090"`
//	    AddDelay     time.Duration `env:"ADD_TO_CART_DELAY" envDefault:"500ms"`
//	    KafkaBrokers []string      `env:"KAFKA_BROKERS" envSeparator:","`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// LoadFromMap parses values from the given map instead of the process
// environment. Useful for CLI flags and tests.
func LoadFromMap(cfg any, values map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: values}); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
