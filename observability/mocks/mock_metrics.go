package mocks

import "github.com/stretchr/testify/mock"

// MockMetrics is a mock implementation of Metrics interface
type MockMetrics struct {
	mock.Mock
}

// RecordMockCreated mocks the RecordMockCreated method
func (m *MockMetrics) RecordMockCreated(trigger string) {
	m.Called(trigger)
}

// RecordOutputWritten mocks the RecordOutputWritten method
func (m *MockMetrics) RecordOutputWritten(binding string) {
	m.Called(binding)
}

// RecordDecodeError mocks the RecordDecodeError method
func (m *MockMetrics) RecordDecodeError(trigger string, reason string) {
	m.Called(trigger, reason)
}
