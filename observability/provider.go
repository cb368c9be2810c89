// Package observability provides a centralized provider for the loggers and
// metrics used by the mock library.
package observability

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/sudzxd/azure-functions-test/observability/logger"
	"github.com/sudzxd/azure-functions-test/observability/metrics"
	"github.com/sudzxd/azure-functions-test/observability/types"
)

// Logger is a type alias for the Logger interface from the types package.
type Logger = types.Logger

// Metrics is a type alias for the Metrics interface from the types package.
type Metrics = types.Metrics

// Fields is a type alias for structured logging fields.
type Fields = types.Fields

// Config is a type alias for the observability configuration.
type Config = types.Config

// Provider is a type alias for the Provider interface from the types package.
type Provider = types.Provider

// DefaultProvider implements the Provider interface.
// It caches one Logger and one Metrics instance per component. All loggers
// share a root logrus logger and all collectors share a private registry.
type DefaultProvider struct {
	// config holds the observability configuration
	config *Config
	// root is shared by every component logger
	root *logrus.Logger
	// registry holds the collectors of every component
	registry *prometheus.Registry
	// loggers stores Logger instances indexed by component name
	loggers map[string]Logger
	// metrics stores Metrics instances indexed by component name
	metrics map[string]Metrics
	// mu provides thread-safe access to the maps
	mu sync.RWMutex
}

// NewProvider creates a new observability provider with the given configuration.
// If LogOutput is not specified in the config, it defaults to os.Stderr.
//
// Example:
//
//	provider := NewProvider(&Config{
//		ServiceName: "azure_functions_test",
//		LogLevel:    "debug",
//	})
//	log := provider.Logger("mocks")
func NewProvider(config *Config) *DefaultProvider {
	cfg := normalize(config)

	return &DefaultProvider{
		config:   cfg,
		root:     logger.NewRoot(rootOptions(cfg)),
		registry: prometheus.NewRegistry(),
		loggers:  make(map[string]Logger),
		metrics:  make(map[string]Metrics),
	}
}

// Logger returns a Logger instance for the specified component.
// Each component gets the same Logger across calls, named
// "{config.ServiceName}.{component}".
//
// Parameters:
//   - component: The name of the component requesting the logger
//
// Returns:
//   - A Logger instance configured for the specified component
func (p *DefaultProvider) Logger(component string) Logger {
	p.mu.RLock()
	if l, exists := p.loggers[component]; exists {
		p.mu.RUnlock()
		return l
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check
	if l, exists := p.loggers[component]; exists {
		return l
	}

	fields := make(Fields)
	for k, v := range p.config.AdditionalFields {
		fields[k] = v
	}

	name := fmt.Sprintf("%s.%s", p.config.ServiceName, component)
	l := logger.New(p.root, name, fields)
	p.loggers[component] = l

	return l
}

// Metrics returns a Metrics instance for the specified component.
// The collectors are created and registered on first access.
//
// Parameters:
//   - component: The name of the component requesting the metrics collector
//
// Returns:
//   - A Metrics instance configured for the specified component
func (p *DefaultProvider) Metrics(component string) Metrics {
	p.mu.RLock()
	if m, exists := p.metrics[component]; exists {
		p.mu.RUnlock()
		return m
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check
	if m, exists := p.metrics[component]; exists {
		return m
	}

	m := metrics.New(p.config.ServiceName, component, p.registry)
	p.metrics[component] = m

	return m
}

// Registry returns the registry holding every component's collectors.
func (p *DefaultProvider) Registry() *prometheus.Registry {
	return p.registry
}

// Config returns a copy of the provider's configuration.
func (p *DefaultProvider) Config() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return *p.config
}

// Reconfigure applies config to the shared root logger. Cached component
// loggers keep their identity and pick up the new level, format and output.
func (p *DefaultProvider) Reconfigure(config *Config) {
	cfg := normalize(config)

	p.mu.Lock()
	defer p.mu.Unlock()

	cfg.ServiceName = p.config.ServiceName
	p.config = cfg
	logger.Apply(p.root, rootOptions(cfg))
}

// Close shuts down the provider and releases associated resources.
// It closes the LogOutput if it implements io.Closer, except for
// os.Stdout and os.Stderr which should not be closed.
//
// Returns:
//   - An error if closing the LogOutput fails, nil otherwise
func (p *DefaultProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if closer, ok := p.config.LogOutput.(io.Closer); ok {
		if closer != os.Stdout && closer != os.Stderr {
			return closer.Close()
		}
	}

	return nil
}

func normalize(config *Config) *Config {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stderr
	}
	return &cfg
}

func rootOptions(cfg *Config) logger.Options {
	return logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Verbose: cfg.Verbose,
		Output:  cfg.LogOutput,
	}
}
