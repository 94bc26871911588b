package routes

import (
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	messageHandler *handler.MessageHandler,
	playerHandler *handler.PlayerHandler,
) {
	// POST /messages
	router.POST("/messages", messageHandler.ProcessMessage)

	// Player routes
	playerRoutes := router.Group("/player")
	{
		// GET /player/:name/balance
		playerRoutes.GET("/:name/balance", playerHandler.GetBalance)

		// GET /player/:name/games
		playerRoutes.GET("/:name/games", playerHandler.ListGameBalances)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
