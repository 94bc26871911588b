package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	playerUseCase "github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/player"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PlayerHandler handles player balance HTTP requests
type PlayerHandler struct {
	queryService *playerUseCase.QueryService
	logger       coreport.Logger
}

// NewPlayerHandler creates a new player handler instance
func NewPlayerHandler(queryService *playerUseCase.QueryService, logger coreport.Logger) *PlayerHandler {
	return &PlayerHandler{
		queryService: queryService,
		logger:       logger,
	}
}

// GetBalance handles the GET /player/:name/balance endpoint
func (h *PlayerHandler) GetBalance(c *gin.Context) {
	name := c.Param("name")

	user, err := h.queryService.GetBalance(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, name, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserName:    user.UserName,
		BankBalance: user.BankBalance.String(),
	})
}

// ListGameBalances handles the GET /player/:name/games endpoint
func (h *PlayerHandler) ListGameBalances(c *gin.Context) {
	name := c.Param("name")

	user, balances, err := h.queryService.ListGameBalances(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, name, err)
		return
	}

	games := make([]dto.GameBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		games = append(games, dto.GameBalanceResponse{
			Game:              balance.Game,
			LastBalance:       balance.LastBalance.String(),
			CurrentBotBalance: balance.CurrentBotBalance.String(),
		})
	}

	c.JSON(http.StatusOK, dto.GameBalancesResponse{
		UserName:    user.UserName,
		BankBalance: user.BankBalance.String(),
		Games:       games,
	})
}

// writeError maps domain errors to HTTP error responses
func (h *PlayerHandler) writeError(c *gin.Context, name string, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "Internal server error"

	if domainerr.IsUserNotFoundError(err) {
		statusCode = http.StatusNotFound
		errorMessage = "Player not found"
	} else {
		h.logger.Error("Error getting player balance", map[string]any{
			"userName": name,
			"error":    err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage,
	})
}
