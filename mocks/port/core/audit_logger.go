package core

import (
	"github.com/stretchr/testify/mock"

	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
)

// MockAuditLogger is a mock implementation of the core.AuditLogger interface
type MockAuditLogger struct {
	mock.Mock
}

// RecordMutation mocks the RecordMutation method
func (m *MockAuditLogger) RecordMutation(entry coreport.AuditEntry) {
	m.Called(entry)
}

// RecordError mocks the RecordError method
func (m *MockAuditLogger) RecordError(runID, contextTag string, err error, fields map[string]any) {
	m.Called(runID, contextTag, err, fields)
}
