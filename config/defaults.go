package config

import "github.com/spf13/viper"

// EnvPrefix prefixes every environment variable the library reads.
const EnvPrefix = "AZFUNCTEST"

// Default values.
const (
	DefaultServiceName = "azure_functions_test"
	DefaultLogLevel    = "warning"
	DefaultLogFormat   = "text"
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		ServiceName: DefaultServiceName,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("service_name", d.ServiceName)
	v.SetDefault("env", d.Environment)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.verbose", d.Log.Verbose)
}
