package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connection holds the database connection and its configuration
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// NewConnection establishes a new database connection with the given configuration.
// The initial dial is retried RetryAttempts times with RetryDelay between attempts
// so the service survives a database that comes up slightly later than it does.
func NewConnection(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	logger.Info("Connecting to database", map[string]any{
		"driver": config.Driver,
		"host":   config.Host,
		"port":   config.Port,
		"name":   config.Database,
	})

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(logger, timeProvider, config.LogLevel),
		NowFunc: func() time.Time {
			return timeProvider.Now()
		},
	}

	var db *gorm.DB
	var err error
	attempts := config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   config.RetryDelay.String(),
			})
			time.Sleep(config.RetryDelay)
		}

		db, err = gorm.Open(postgres.Open(config.DSN()), gormConfig)
		if err == nil {
			break
		}

		logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to database", map[string]any{
		"driver":         config.Driver,
		"host":           config.Host,
		"name":           config.Database,
		"max_open_conns": config.MaxOpenConns,
		"max_idle_conns": config.MaxIdleConns,
	})

	return &Connection{
		DB:     db,
		Config: config,
	}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with the configured query timeout applied
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.Config.QueryTimeout)
}
