package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the library's runtime settings. Only the logging setup reads
// it; mock construction never consults configuration.
type Config struct {
	ServiceName string    `mapstructure:"service_name" validate:"required"`
	Environment string    `mapstructure:"env"`
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=debug info warn warning error critical off"`
	Format  string `mapstructure:"format" validate:"oneof=text json"`
	Verbose bool   `mapstructure:"verbose"`
}

var validate = validator.New()

// Validate validates the entire configuration
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("configuration errors: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", envName(fe.Namespace())))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q",
				envName(fe.Namespace()), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", envName(fe.Namespace()), fe.Tag()))
		}
	}

	return fmt.Errorf("configuration errors: %s", strings.Join(msgs, "; "))
}

// envName maps a validator namespace such as "Config.Log.Level" to the
// environment variable that sets it.
func envName(namespace string) string {
	switch namespace {
	case "Config.ServiceName":
		return EnvPrefix + "_SERVICE_NAME"
	case "Config.Log.Level":
		return EnvPrefix + "_LOG_LEVEL"
	case "Config.Log.Format":
		return EnvPrefix + "_LOG_FORMAT"
	default:
		return namespace
	}
}
