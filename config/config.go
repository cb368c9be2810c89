// Package config loads the library's logging settings from the environment,
// .env files and an optional config file.
package config

import (
	"fmt"
	"sync"
)

// Singleton instance management
var (
	mu       sync.RWMutex
	instance *Config
	loaded   bool
)

// Load loads configuration from environment variables and .env files.
// Subsequent calls return immediately until Reset is called.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	if loaded {
		return nil
	}

	if err := loadEnvFiles(); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}

	cfg, err := parse()
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	instance = cfg
	loaded = true
	return nil
}

// MustLoad loads configuration and panics on error
func MustLoad() {
	if err := Load(); err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
}

// Get returns the current configuration
// Returns error if configuration hasn't been loaded
func Get() (*Config, error) {
	mu.RLock()
	defer mu.RUnlock()

	if !loaded || instance == nil {
		return nil, fmt.Errorf("configuration not loaded; call Load() first")
	}

	return instance, nil
}

// LoadOrDefault loads the configuration and falls back to Default when
// loading fails. The error is returned alongside so callers can report it.
func LoadOrDefault() (*Config, error) {
	if err := Load(); err != nil {
		return Default(), err
	}
	return Get()
}

// IsLoaded returns whether configuration has been loaded
func IsLoaded() bool {
	mu.RLock()
	defer mu.RUnlock()
	return loaded
}

// Reset clears the configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	loaded = false
}
