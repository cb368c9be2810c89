package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()

	metrics := New("azure_functions_test", "mocks", reg)

	assert.NotNil(t, metrics)
	assert.Equal(t, "mocks", metrics.component)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("azure_functions_test", "mocks", reg)

	assert.Panics(t, func() {
		New("azure_functions_test", "mocks", reg)
	})
}

func TestPrometheusMetrics_RecordMockCreated(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := New("azure_functions_test", "mocks", reg)

	metrics.RecordMockCreated("queue")
	metrics.RecordMockCreated("queue")
	metrics.RecordMockCreated("http")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.mocksCreated.WithLabelValues("queue")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.mocksCreated.WithLabelValues("http")))
}

func TestPrometheusMetrics_RecordOutputWritten(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := New("azure_functions_test", "capture", reg)

	metrics.RecordOutputWritten("result")

	expected := `
# HELP azure_functions_test_capture_outputs_written_total Writes to captured output bindings, by binding name.
# TYPE azure_functions_test_capture_outputs_written_total counter
azure_functions_test_capture_outputs_written_total{binding="result"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"azure_functions_test_capture_outputs_written_total")
	require.NoError(t, err)
}

func TestPrometheusMetrics_RecordDecodeError(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := New("azure_functions_test", "mocks", reg)

	metrics.RecordDecodeError("queue", "utf8")
	metrics.RecordDecodeError("queue", "json")
	metrics.RecordDecodeError("queue", "json")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.decodeErrors.WithLabelValues("queue", "utf8")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.decodeErrors.WithLabelValues("queue", "json")))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "azure_functions_test", sanitize("azure-functions.test"))
	assert.Equal(t, "mocks_queue", sanitize("mocks.queue"))
}
