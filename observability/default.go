package observability

import (
	"io"
	"sync"

	"github.com/sudzxd/azure-functions-test/config"
)

// Defaults used when no configuration is loaded.
const (
	DefaultServiceName = config.DefaultServiceName
	DefaultLogLevel    = config.DefaultLogLevel
)

var (
	mu      sync.Mutex
	current Provider
)

// Default returns the process-wide provider, creating it from the loaded
// configuration on first use. A configuration that fails to load falls back
// to defaults and the failure is logged as a warning.
func Default() Provider {
	mu.Lock()
	defer mu.Unlock()
	return defaultLocked()
}

func defaultLocked() Provider {
	if current != nil {
		return current
	}

	cfg, err := config.LoadOrDefault()
	p := NewProvider(FromConfig(cfg))
	if err != nil {
		p.Logger("observability").Warn("using default logging configuration", Fields{"error": err.Error()})
	}
	current = p
	return current
}

// FromConfig maps loaded settings onto a provider configuration.
func FromConfig(cfg *config.Config) *Config {
	out := &Config{
		ServiceName: cfg.ServiceName,
		LogLevel:    cfg.Log.Level,
		LogFormat:   cfg.Log.Format,
		Verbose:     cfg.Log.Verbose,
	}
	if cfg.Environment != "" {
		out.AdditionalFields = Fields{"env": cfg.Environment}
	}
	return out
}

// GetLogger returns the default provider's logger for component.
func GetLogger(component string) Logger {
	return Default().Logger(component)
}

// GetMetrics returns the default provider's metrics for component.
func GetMetrics(component string) Metrics {
	return Default().Metrics(component)
}

// Configure applies cfg to the default provider. Loggers handed out earlier
// follow the new settings.
func Configure(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()

	if p, ok := current.(*DefaultProvider); ok {
		p.Reconfigure(cfg)
		return
	}
	current = NewProvider(cfg)
}

// EnableDebug switches the default provider to debug level with verbose output.
func EnableDebug() {
	update(func(c *Config) {
		c.LogLevel = "debug"
		c.Verbose = true
	})
}

// Disable silences all log output from the default provider.
func Disable() {
	update(func(c *Config) {
		c.LogLevel = "off"
	})
}

// SetOutput redirects the default provider's log output.
func SetOutput(w io.Writer) {
	update(func(c *Config) {
		c.LogOutput = w
	})
}

func update(fn func(*Config)) {
	mu.Lock()
	defer mu.Unlock()

	p, ok := defaultLocked().(*DefaultProvider)
	if !ok {
		return
	}
	cfg := p.Config()
	fn(&cfg)
	p.Reconfigure(&cfg)
}

// Reset discards the default provider with its cached loggers and
// collectors. The next call to Default starts from the configuration again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
	config.Reset()
}

// Use installs p as the default provider and returns a function restoring
// the previous one.
func Use(p Provider) (restore func()) {
	mu.Lock()
	prev := current
	current = p
	mu.Unlock()

	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}
