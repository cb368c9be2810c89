package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sudzxd/azure-functions-test/utils"
)

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() error {
	if utils.GetEnvBool(EnvPrefix+"_SKIP_DOTENV", false) {
		return nil
	}

	// Base .env never overrides variables already set in the process.
	if utils.FileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	env := utils.FirstEnv("", EnvPrefix+"_ENV", "ENVIRONMENT", "ENV")
	if env != "" {
		envFile := fmt.Sprintf(".env.%s", env)
		if utils.FileExists(envFile) {
			if err := godotenv.Overload(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	if utils.FileExists(".env.local") {
		if err := godotenv.Overload(".env.local"); err != nil {
			return fmt.Errorf("failed to load .env.local: %w", err)
		}
	}

	return nil
}

// newViper builds a viper instance bound to AZFUNCTEST_* variables and the
// optional config file named by AZFUNCTEST_CONFIG.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path := utils.GetEnv(EnvPrefix+"_CONFIG", ""); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return v, nil
}

// parse reads the configuration from viper and normalizes it.
func parse() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	return cfg, nil
}
