package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears loaded state and the variables the loader reads.
func isolate(t *testing.T) {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	for _, key := range []string{
		"AZFUNCTEST_SERVICE_NAME",
		"AZFUNCTEST_ENV",
		"AZFUNCTEST_LOG_LEVEL",
		"AZFUNCTEST_LOG_FORMAT",
		"AZFUNCTEST_LOG_VERBOSE",
		"AZFUNCTEST_CONFIG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("AZFUNCTEST_SKIP_DOTENV", "true")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	require.NoError(t, Load())
	cfg, err := Get()

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, IsLoaded())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("AZFUNCTEST_LOG_LEVEL", "DEBUG")
	t.Setenv("AZFUNCTEST_LOG_FORMAT", "json")
	t.Setenv("AZFUNCTEST_LOG_VERBOSE", "true")
	t.Setenv("AZFUNCTEST_SERVICE_NAME", "orders")

	require.NoError(t, Load())
	cfg := mustGet(t)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, "orders", cfg.ServiceName)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		message string
	}{
		{
			name:    "unknown level",
			key:     "AZFUNCTEST_LOG_LEVEL",
			value:   "loud",
			message: "AZFUNCTEST_LOG_LEVEL must be one of",
		},
		{
			name:    "unknown format",
			key:     "AZFUNCTEST_LOG_FORMAT",
			value:   "xml",
			message: "AZFUNCTEST_LOG_FORMAT must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.False(t, IsLoaded())
		})
	}
}

func TestLoad_IsCachedUntilReset(t *testing.T) {
	isolate(t)
	require.NoError(t, Load())

	t.Setenv("AZFUNCTEST_LOG_LEVEL", "error")
	require.NoError(t, Load())
	assert.Equal(t, DefaultLogLevel, mustGet(t).Log.Level)

	Reset()
	require.NoError(t, Load())
	assert.Equal(t, "error", mustGet(t).Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "azfunctest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n  format: json\n"), 0o600))
	t.Setenv("AZFUNCTEST_CONFIG", path)

	require.NoError(t, Load())
	cfg := mustGet(t)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	isolate(t)
	t.Setenv("AZFUNCTEST_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_DotEnvLocal(t *testing.T) {
	isolate(t)
	t.Setenv("AZFUNCTEST_SKIP_DOTENV", "false")
	// Registered so the value written by godotenv is restored afterwards.
	t.Setenv("AZFUNCTEST_LOG_FORMAT", "text")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("AZFUNCTEST_LOG_FORMAT=json\n"), 0o600))
	t.Chdir(dir)

	require.NoError(t, Load())

	assert.Equal(t, "json", mustGet(t).Log.Format)
}

func TestGet_NotLoaded(t *testing.T) {
	isolate(t)

	cfg, err := Get()

	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	isolate(t)
	t.Setenv("AZFUNCTEST_LOG_LEVEL", "nonsense")

	cfg, err := LoadOrDefault()

	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestMustLoad_Panics(t *testing.T) {
	isolate(t)
	t.Setenv("AZFUNCTEST_LOG_FORMAT", "yaml")

	assert.Panics(t, MustLoad)
}

func mustGet(t *testing.T) *Config {
	t.Helper()
	cfg, err := Get()
	require.NoError(t, err)
	return cfg
}
