package player

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	mockCore "github.com/amirhossein-jamali/point-exchange/mocks/port/core"
	mockPersistence "github.com/amirhossein-jamali/point-exchange/mocks/port/persistence"
)

func newRelaxedLogger() *mockCore.MockLogger {
	mockLogger := new(mockCore.MockLogger)
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	return mockLogger
}

func TestQueryService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the ledger record for a known player", func(t *testing.T) {
		// Arrange
		mockUsers := new(mockPersistence.MockUserRepository)
		mockBalances := new(mockPersistence.MockGameBalanceRepository)

		user := &entity.User{ID: 1, UserName: "Alice", BankBalance: decimal.NewFromInt(30)}
		mockUsers.On("GetByName", ctx, "Alice").Return(user, nil)

		service := NewQueryService(mockUsers, mockBalances, newRelaxedLogger())

		// Act
		got, err := service.GetBalance(ctx, "Alice")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "30", got.BankBalance.String())
	})

	t.Run("should normalize the name before lookup", func(t *testing.T) {
		// Arrange
		mockUsers := new(mockPersistence.MockUserRepository)
		mockBalances := new(mockPersistence.MockGameBalanceRepository)

		user := &entity.User{ID: 1, UserName: "Alice"}
		mockUsers.On("GetByName", ctx, "Alice").Return(user, nil)

		service := NewQueryService(mockUsers, mockBalances, newRelaxedLogger())

		// Act
		_, err := service.GetBalance(ctx, "  Alice  ")

		// Assert
		require.NoError(t, err)
		mockUsers.AssertCalled(t, "GetByName", ctx, "Alice")
	})

	t.Run("should propagate not-found", func(t *testing.T) {
		// Arrange
		mockUsers := new(mockPersistence.MockUserRepository)
		mockBalances := new(mockPersistence.MockGameBalanceRepository)
		mockUsers.On("GetByName", ctx, "Ghost").Return(nil, errs.ErrUserNotFound)

		service := NewQueryService(mockUsers, mockBalances, newRelaxedLogger())

		// Act
		got, err := service.GetBalance(ctx, "Ghost")

		// Assert
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestQueryService_ListGameBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("should return all mirror balances of a player", func(t *testing.T) {
		// Arrange
		mockUsers := new(mockPersistence.MockUserRepository)
		mockBalances := new(mockPersistence.MockGameBalanceRepository)

		user := &entity.User{ID: 1, UserName: "Alice", BankBalance: decimal.NewFromInt(630)}
		mockUsers.On("GetByName", ctx, "Alice").Return(user, nil)

		stored := []*entity.GameBalance{
			{UserID: 1, Game: entity.GameBunker, CurrentBotBalance: decimal.NewFromInt(30)},
			{UserID: 1, Game: entity.GameGDCards, LastBalance: decimal.NewFromInt(25)},
		}
		mockBalances.On("ListByUser", ctx, uint64(1)).Return(stored, nil)

		service := NewQueryService(mockUsers, mockBalances, newRelaxedLogger())

		// Act
		got, balances, err := service.ListGameBalances(ctx, "Alice")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Len(t, balances, 2)
	})

	t.Run("should not list balances for an unknown player", func(t *testing.T) {
		// Arrange
		mockUsers := new(mockPersistence.MockUserRepository)
		mockBalances := new(mockPersistence.MockGameBalanceRepository)
		mockUsers.On("GetByName", ctx, "Ghost").Return(nil, errs.ErrUserNotFound)

		service := NewQueryService(mockUsers, mockBalances, newRelaxedLogger())

		// Act
		_, _, err := service.ListGameBalances(ctx, "Ghost")

		// Assert
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		mockBalances.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})
}
