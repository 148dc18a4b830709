package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port     int           `env:"TEST_CFG_PORT" envDefault:"8090"`
	LogLevel string        `env:"TEST_CFG_LOG_LEVEL" envDefault:"info"`
	Delay    time.Duration `env:"TEST_CFG_DELAY" envDefault:"500ms"`
	Brokers  []string      `env:"TEST_CFG_BROKERS" envSeparator:","`
	Enabled  bool          `env:"TEST_CFG_ENABLED" envDefault:"false"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.Delay)
	assert.Empty(t, cfg.Brokers)
	assert.False(t, cfg.Enabled)
}

func TestLoad_FromEnvVars(t *testing.T) {
	t.Setenv("TEST_CFG_PORT", "9090")
	t.Setenv("TEST_CFG_LOG_LEVEL", "debug")
	t.Setenv("TEST_CFG_DELAY", "1s")
	t.Setenv("TEST_CFG_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("TEST_CFG_ENABLED", "true")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.Delay)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers)
	assert.True(t, cfg.Enabled)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TEST_CFG_DELAY", "soon")

	var cfg testConfig
	err := Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadFromMap(t *testing.T) {
	var cfg testConfig
	require.NoError(t, LoadFromMap(&cfg, map[string]string{
		"TEST_CFG_PORT":  "7000",
		"TEST_CFG_DELAY": "0s",
	}))

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.Delay)
	assert.Equal(t, "info", cfg.LogLevel)
}
