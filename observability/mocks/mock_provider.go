package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/sudzxd/azure-functions-test/observability/types"
)

// MockProvider is a mock implementation of Provider interface
type MockProvider struct {
	mock.Mock
}

// Logger mocks the Logger method
func (m *MockProvider) Logger(component string) types.Logger {
	args := m.Called(component)
	if logger, ok := args.Get(0).(types.Logger); ok {
		return logger
	}
	return nil
}

// Metrics mocks the Metrics method
func (m *MockProvider) Metrics(component string) types.Metrics {
	args := m.Called(component)
	if metrics, ok := args.Get(0).(types.Metrics); ok {
		return metrics
	}
	return nil
}

// Close mocks the Close method
func (m *MockProvider) Close() error {
	args := m.Called()
	return args.Error(0)
}

// NewQuietProvider returns a MockProvider whose loggers accept any call
// and whose metrics are recorded on the returned MockMetrics.
func NewQuietProvider() (*MockProvider, *MockMetrics) {
	log := new(MockLogger)
	log.On("Debug", mock.Anything, mock.Anything).Maybe()
	log.On("Info", mock.Anything, mock.Anything).Maybe()
	log.On("Warn", mock.Anything, mock.Anything).Maybe()
	log.On("Error", mock.Anything, mock.Anything, mock.Anything).Maybe()

	metrics := new(MockMetrics)
	provider := new(MockProvider)
	provider.On("Logger", mock.Anything).Return(log).Maybe()
	provider.On("Metrics", mock.Anything).Return(metrics).Maybe()
	return provider, metrics
}
