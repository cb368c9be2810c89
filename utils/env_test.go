package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		envValue     string
		defaultValue string
		expected     string
	}{
		{
			name:         "environment variable set",
			key:          "AZFUNCTEST_TEST_ENV_VAR",
			envValue:     "test_value",
			defaultValue: "default",
			expected:     "test_value",
		},
		{
			name:         "environment variable not set",
			key:          "AZFUNCTEST_UNSET_VAR",
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			assert.Equal(t, tt.expected, GetEnv(tt.key, tt.defaultValue))
		})
	}
}

func TestFirstEnv(t *testing.T) {
	t.Run("first set key wins", func(t *testing.T) {
		t.Setenv("AZFUNCTEST_FIRST_B", "b")
		t.Setenv("AZFUNCTEST_FIRST_C", "c")
		os.Unsetenv("AZFUNCTEST_FIRST_A")

		got := FirstEnv("default", "AZFUNCTEST_FIRST_A", "AZFUNCTEST_FIRST_B", "AZFUNCTEST_FIRST_C")

		assert.Equal(t, "b", got)
	})

	t.Run("falls back to default", func(t *testing.T) {
		os.Unsetenv("AZFUNCTEST_FIRST_NONE")

		assert.Equal(t, "default", FirstEnv("default", "AZFUNCTEST_FIRST_NONE"))
	})
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{name: "true value", envValue: "true", defaultValue: false, expected: true},
		{name: "numeric true", envValue: "1", defaultValue: false, expected: true},
		{name: "false value", envValue: "false", defaultValue: true, expected: false},
		{name: "invalid value returns default", envValue: "maybe", defaultValue: true, expected: true},
		{name: "unset returns default", envValue: "", defaultValue: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AZFUNCTEST_TEST_BOOL", tt.envValue)

			assert.Equal(t, tt.expected, GetEnvBool("AZFUNCTEST_TEST_BOOL", tt.defaultValue))
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log: {}"), 0o600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
