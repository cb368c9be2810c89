/*
Package observability provides structured logging and metrics for the mock
library.

# Architecture

	Provider (caches one instance per component)
	    ├── Logger (logrus, shared root logger)
	    └── Metrics (Prometheus counters, private registry)

Every package of the library asks the process-wide provider for its
component logger:

	log := observability.GetLogger("mocks")
	log.Debug("mock created", observability.Fields{"trigger": "queue"})

Component loggers are named "{service}.{component}", so with the default
service name the mocks package logs as "azure_functions_test.mocks".

# Defaults

Output goes to os.Stderr at WARNING level in the text format:

	[WARNING] azure_functions_test.mocks: message key=value

The defaults can be changed through the environment (see package config):
AZFUNCTEST_LOG_LEVEL, AZFUNCTEST_LOG_FORMAT, AZFUNCTEST_LOG_VERBOSE.

# Runtime control

	observability.EnableDebug()       // debug level, timestamps and call sites
	observability.Disable()           // silence everything
	observability.Configure(&observability.Config{LogLevel: "info", LogFormat: "json"})
	observability.Reset()             // forget cached loggers and configuration

Reset is meant for test isolation: call it from t.Cleanup in tests that
change logging.

# Testing

Use the testify mocks in observability/mocks together with Use:

	mockProvider := new(mocks.MockProvider)
	mockMetrics := new(mocks.MockMetrics)
	mockProvider.On("Metrics", "capture").Return(mockMetrics)
	mockMetrics.On("RecordOutputWritten", "result").Return()

	restore := observability.Use(mockProvider)
	defer restore()

# Metrics

  - {service}_{component}_mocks_created_total: Counter with label [trigger]
  - {service}_{component}_outputs_written_total: Counter with label [binding]
  - {service}_{component}_decode_errors_total: Counter with labels [trigger, reason]

DefaultProvider.Registry exposes the registry for Gather or custom exposition.
*/
package observability
