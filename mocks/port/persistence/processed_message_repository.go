package persistence

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockProcessedMessageRepository is a mock implementation of the persistence.ProcessedMessageRepository interface
type MockProcessedMessageRepository struct {
	mock.Mock
}

// Exists mocks the Exists method
func (m *MockProcessedMessageRepository) Exists(ctx context.Context, fingerprint string) (bool, error) {
	args := m.Called(ctx, fingerprint)
	return args.Bool(0), args.Error(1)
}

// Create mocks the Create method
func (m *MockProcessedMessageRepository) Create(ctx context.Context, fingerprint string, processedAt time.Time) error {
	args := m.Called(ctx, fingerprint, processedAt)
	return args.Error(0)
}
