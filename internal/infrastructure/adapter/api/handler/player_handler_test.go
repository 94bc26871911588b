package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	playerUseCase "github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/player"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/logger"
	mockPersistence "github.com/amirhossein-jamali/point-exchange/mocks/port/persistence"
)

func newPlayerRouter(users *mockPersistence.MockUserRepository, balances *mockPersistence.MockGameBalanceRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	noop := logger.NewNoopLogger()
	service := playerUseCase.NewQueryService(users, balances, noop)
	playerHandler := NewPlayerHandler(service, noop)

	router := gin.New()
	router.GET("/player/:name/balance", playerHandler.GetBalance)
	router.GET("/player/:name/games", playerHandler.ListGameBalances)
	return router
}

func TestPlayerHandler_GetBalance(t *testing.T) {
	t.Run("should return the bank balance of a known player", func(t *testing.T) {
		// Arrange
		users := new(mockPersistence.MockUserRepository)
		balances := new(mockPersistence.MockGameBalanceRepository)
		users.On("GetByName", mock.Anything, "Alice").
			Return(&entity.User{ID: 1, UserName: "Alice", BankBalance: decimal.NewFromInt(630)}, nil)

		router := newPlayerRouter(users, balances)
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/player/Alice/balance", nil)

		// Act
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.BalanceResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Alice", response.UserName)
		assert.Equal(t, "630", response.BankBalance)
	})

	t.Run("should return 404 for an unknown player", func(t *testing.T) {
		// Arrange
		users := new(mockPersistence.MockUserRepository)
		balances := new(mockPersistence.MockGameBalanceRepository)
		users.On("GetByName", mock.Anything, "Ghost").Return(nil, errs.ErrUserNotFound)

		router := newPlayerRouter(users, balances)
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/player/Ghost/balance", nil)

		// Act
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeUserNotFound, response.Code)
	})
}

func TestPlayerHandler_ListGameBalances(t *testing.T) {
	t.Run("should list all mirror balances", func(t *testing.T) {
		// Arrange
		users := new(mockPersistence.MockUserRepository)
		balances := new(mockPersistence.MockGameBalanceRepository)
		users.On("GetByName", mock.Anything, "Alice").
			Return(&entity.User{ID: 1, UserName: "Alice", BankBalance: decimal.NewFromInt(630)}, nil)
		balances.On("ListByUser", mock.Anything, uint64(1)).Return([]*entity.GameBalance{
			{UserID: 1, Game: entity.GameBunker, CurrentBotBalance: decimal.NewFromInt(30)},
			{UserID: 1, Game: entity.GameGDCards, LastBalance: decimal.NewFromInt(25)},
		}, nil)

		router := newPlayerRouter(users, balances)
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/player/Alice/games", nil)

		// Act
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.GameBalancesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Alice", response.UserName)
		require.Len(t, response.Games, 2)
		assert.Equal(t, entity.GameBunker, response.Games[0].Game)
		assert.Equal(t, "30", response.Games[0].CurrentBotBalance)
	})
}
