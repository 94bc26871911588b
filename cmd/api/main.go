package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	balanceUseCase "github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/balance"
	messageUseCase "github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/message"
	playerUseCase "github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/player"

	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(database.FromAppConfig(cfg), appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB, appLogger)

	// Conversion table from configuration
	coefficients, err := balanceUseCase.NewCoefficientProvider(cfg.Games.Coefficients)
	if err != nil {
		appLogger.Error("Invalid game coefficient configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	appLogger.Info("Loaded game coefficients", map[string]any{
		"games": coefficients.Games(),
	})

	// Initialize use cases
	auditLogger := logger.NewAuditLogger(appLogger)
	balanceManager := balanceUseCase.NewManager(uow, coefficients, tp, auditLogger, appLogger)
	processor := messageUseCase.NewProcessor(
		uow,
		messageUseCase.NewClassifier(),
		messageUseCase.NewParser(),
		messageUseCase.NewIdempotencyChecker(uow),
		balanceManager,
		tp,
		auditLogger,
		appLogger,
	)
	queryService := playerUseCase.NewQueryService(
		repository.NewUserRepository(conn.DB, appLogger),
		repository.NewGameBalanceRepository(conn.DB, appLogger),
		appLogger,
	)

	// Initialize API handlers
	messageHandler := handler.NewMessageHandler(processor, appLogger)
	playerHandler := handler.NewPlayerHandler(queryService, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, messageHandler, playerHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PX_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or PX_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PX_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PX_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if len(cfg.Games.Coefficients) == 0 {
		missingConfigs = append(missingConfigs, "games.coefficients")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
