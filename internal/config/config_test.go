package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://api.foursquare.com/v3/places", cfg.Foursquare.BaseURL)
	assert.InDelta(t, 10, cfg.Foursquare.RateLimit, 0.001)
	assert.Equal(t, 15, cfg.Foursquare.TimeoutSecs)
	assert.Equal(t, 20, cfg.Analysis.MaxCompetitors)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "localmind.db", cfg.Cache.Path)
	assert.Equal(t, 24, cfg.Cache.TTLHours)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
server:
  port: 9090
log:
  level: debug
  format: console
foursquare:
  key: fsq-test-key
cache:
  enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "fsq-test-key", cfg.Foursquare.Key)
	assert.False(t, cfg.Cache.Enabled)
	// Defaults still apply for unset values
	assert.Equal(t, 20, cfg.Analysis.MaxCompetitors)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("LOCALMIND_LOG_LEVEL", "warn")
	t.Setenv("LOCALMIND_FOURSQUARE_KEY", "fsq-env-key")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "fsq-env-key", cfg.Foursquare.Key)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("LOCALMIND_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Foursquare.RateLimit = 10
	cfg.Foursquare.TimeoutSecs = 15
	cfg.Analysis.MaxCompetitors = 20
	cfg.Cache.Enabled = true
	cfg.Cache.Path = "localmind.db"
	cfg.Cache.TTLHours = 24
	return cfg
}

func TestValidateServe_ValidConfig(t *testing.T) {
	assert.NoError(t, validDefaults().Validate("serve"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateAnalyze_IgnoresPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	assert.NoError(t, cfg.Validate("analyze"))
}

func TestValidateUnknownMode(t *testing.T) {
	err := validDefaults().Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateCompetitorBounds(t *testing.T) {
	cfg := validDefaults()

	cfg.Analysis.MaxCompetitors = 0
	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_competitors must be between 1 and 50")

	cfg.Analysis.MaxCompetitors = 51
	err = cfg.Validate("serve")
	assert.Error(t, err)

	cfg.Analysis.MaxCompetitors = 50
	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateCacheSettings(t *testing.T) {
	cfg := validDefaults()

	cfg.Cache.Path = ""
	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache.path is required")

	cfg.Cache.Path = "localmind.db"
	cfg.Cache.TTLHours = 0
	err = cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache.ttl_hours must be >= 1")

	// Disabled cache skips cache checks entirely.
	cfg.Cache.Enabled = false
	assert.NoError(t, cfg.Validate("serve"))
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
