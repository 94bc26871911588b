package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
)

// MockTimeProvider is a mock implementation of the core.TimeProvider interface
type MockTimeProvider struct {
	mock.Mock
}

// Now mocks the Now method
func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// Since mocks the Since method
func (m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

// Until mocks the Until method
func (m *MockTimeProvider) Until(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

// Sleep mocks the Sleep method
func (m *MockTimeProvider) Sleep(d coreport.Duration) {
	m.Called(d)
}

// WithTimeout mocks the WithTimeout method
func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}

// ParseDuration mocks the ParseDuration method
func (m *MockTimeProvider) ParseDuration(s string) (coreport.Duration, error) {
	args := m.Called(s)
	return args.Get(0).(coreport.Duration), args.Error(1)
}
