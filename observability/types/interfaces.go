// Package types holds the logging and metrics contracts shared by the
// observability packages.
//
// Design Patterns:
//   - Provider Pattern: Manages instances and configuration
//   - Dependency Inversion: Core depends on interfaces, not implementations
package types

import "io"

// Logger defines the contract for structured logging.
// Test doubles run synchronously inside a single test, so there is no
// context parameter.
type Logger interface {
	// Info logs an informational message.
	//
	// Parameters:
	//   - msg: The log message describing the event
	//   - fields: Additional structured fields for context
	Info(msg string, fields Fields)

	// Error logs an error message with the associated error.
	//
	// Parameters:
	//   - msg: The log message describing the error context
	//   - err: The error object to be logged
	//   - fields: Additional structured fields for context
	Error(msg string, err error, fields Fields)

	// Warn logs a warning message.
	//
	// Parameters:
	//   - msg: The log message describing the warning
	//   - fields: Additional structured fields for context
	Warn(msg string, fields Fields)

	// Debug logs a debug message. Filtered out at the default level.
	//
	// Parameters:
	//   - msg: The log message with debugging information
	//   - fields: Additional structured fields for context
	Debug(msg string, fields Fields)

	// WithFields returns a new Logger that adds fields to every entry.
	//
	// Parameters:
	//   - fields: Fields to be included in all log entries from the returned logger
	//
	// Returns:
	//   - A new Logger instance with the additional fields
	WithFields(fields Fields) Logger
}

// Metrics defines the counters the mock library exports.
// Implementations should follow Prometheus naming conventions.
type Metrics interface {
	// RecordMockCreated counts a constructed trigger mock.
	//
	// Parameters:
	//   - trigger: The trigger kind (e.g., "queue", "http", "blob")
	RecordMockCreated(trigger string)

	// RecordOutputWritten counts a write to a captured output binding.
	//
	// Parameters:
	//   - binding: The output binding name
	RecordOutputWritten(binding string)

	// RecordDecodeError counts a failed JSON accessor call.
	//
	// Parameters:
	//   - trigger: The trigger kind whose body failed to decode
	//   - reason: "utf8" or "json"
	RecordDecodeError(trigger string, reason string)
}

// Fields represents structured logging fields as key-value pairs.
type Fields map[string]interface{}

// Config holds observability configuration for the provider.
type Config struct {
	// ServiceName prefixes logger names and metric namespaces.
	ServiceName string

	// LogLevel sets the minimum log level to output.
	// Valid values: "debug", "info", "warn", "warning", "error", "critical", "off".
	LogLevel string

	// LogFormat selects "text" (default) or "json" output.
	LogFormat string

	// Verbose adds timestamps and call sites to text output.
	Verbose bool

	// LogOutput specifies where logs should be written.
	// If nil, defaults to os.Stderr.
	LogOutput io.Writer

	// AdditionalFields are fields included in every log entry.
	AdditionalFields Fields
}

// Provider manages the lifecycle of observability components.
// Each component gets its own Logger and Metrics instance.
type Provider interface {
	// Logger returns a Logger instance for the specified component.
	// Multiple calls with the same component name return the same logger instance.
	//
	// Parameters:
	//   - component: Name of the component requesting the logger (e.g., "mocks", "capture")
	//
	// Returns:
	//   - A configured Logger instance for the component
	Logger(component string) Logger

	// Metrics returns a Metrics instance for the specified component.
	// Multiple calls with the same component name return the same metrics instance.
	//
	// Parameters:
	//   - component: Name of the component requesting metrics
	//
	// Returns:
	//   - A configured Metrics instance for the component
	Metrics(component string) Metrics

	// Close releases resources held by the provider.
	//
	// Returns:
	//   - An error if cleanup fails, nil on success
	Close() error
}
