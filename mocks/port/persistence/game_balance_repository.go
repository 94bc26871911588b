package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
)

// MockGameBalanceRepository is a mock implementation of the persistence.GameBalanceRepository interface
type MockGameBalanceRepository struct {
	mock.Mock
}

// GetByUserAndGame mocks the GetByUserAndGame method
func (m *MockGameBalanceRepository) GetByUserAndGame(ctx context.Context, userID uint64, game string) (*entity.GameBalance, error) {
	args := m.Called(ctx, userID, game)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GameBalance), args.Error(1)
}

// Create mocks the Create method
func (m *MockGameBalanceRepository) Create(ctx context.Context, balance *entity.GameBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

// UpdateLastBalance mocks the UpdateLastBalance method
func (m *MockGameBalanceRepository) UpdateLastBalance(ctx context.Context, balance *entity.GameBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

// UpdateBotBalance mocks the UpdateBotBalance method
func (m *MockGameBalanceRepository) UpdateBotBalance(ctx context.Context, balance *entity.GameBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

// ListByUser mocks the ListByUser method
func (m *MockGameBalanceRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.GameBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GameBalance), args.Error(1)
}
