package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from a temp dir so no developer config file leaks in.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "accounts.yaml", cfg.Accounts.File)
	assert.Equal(t, 4, cfg.Accounts.CodeWidth)
	assert.False(t, cfg.Accounts.Strict)
	assert.Equal(t, "csv", cfg.Report.Format)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		cfg.Accounts.CodeWidth = 4
		cfg.Report.Format = "csv"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"json log format", func(c *Config) { c.Log.Format = "json" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"multichar delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }, false},
		{"zero code width", func(c *Config) { c.Accounts.CodeWidth = 0 }, false},
		{"huge code width", func(c *Config) { c.Accounts.CodeWidth = 64 }, false},
		{"bad report format", func(c *Config) { c.Report.Format = "pdf" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "nonsense"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PNL_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("PNL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PNL_TEST_MISSING", "fallback"))
}
