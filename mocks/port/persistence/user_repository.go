package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
)

// MockUserRepository is a mock implementation of the persistence.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

// GetByName mocks the GetByName method
func (m *MockUserRepository) GetByName(ctx context.Context, userName string) (*entity.User, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// Create mocks the Create method
func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// UpdateBankBalance mocks the UpdateBankBalance method
func (m *MockUserRepository) UpdateBankBalance(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
