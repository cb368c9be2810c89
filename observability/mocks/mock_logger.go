// Package mocks provides testify mock implementations of the observability
// contracts.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/sudzxd/azure-functions-test/observability/types"
)

// MockLogger is a mock implementation of Logger interface
type MockLogger struct {
	mock.Mock
}

// Info mocks the Info method
func (m *MockLogger) Info(msg string, fields types.Fields) {
	m.Called(msg, fields)
}

// Error mocks the Error method
func (m *MockLogger) Error(msg string, err error, fields types.Fields) {
	m.Called(msg, err, fields)
}

// Warn mocks the Warn method
func (m *MockLogger) Warn(msg string, fields types.Fields) {
	m.Called(msg, fields)
}

// Debug mocks the Debug method
func (m *MockLogger) Debug(msg string, fields types.Fields) {
	m.Called(msg, fields)
}

// WithFields mocks the WithFields method
func (m *MockLogger) WithFields(fields types.Fields) types.Logger {
	args := m.Called(fields)
	if logger, ok := args.Get(0).(types.Logger); ok {
		return logger
	}
	return m
}
