package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// GameBalanceRepository implements the GameBalanceRepository interface using GORM.
// last_balance and current_bot_balance are updated through separate methods: each
// update statement touches only the column its caller is allowed to write.
type GameBalanceRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGameBalanceRepository creates a new GameBalanceRepository instance
func NewGameBalanceRepository(db *gorm.DB, logger coreport.Logger) *GameBalanceRepository {
	return &GameBalanceRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a game balance model to an entity
func (r *GameBalanceRepository) modelToEntity(balanceModel *model.GameBalance) *entity.GameBalance {
	return &entity.GameBalance{
		ID:                balanceModel.ID,
		UserID:            balanceModel.UserID,
		Game:              balanceModel.Game,
		LastBalance:       balanceModel.LastBalance,
		CurrentBotBalance: balanceModel.CurrentBotBalance,
		CreatedAt:         balanceModel.CreatedAt,
		UpdatedAt:         balanceModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *GameBalanceRepository) handleDatabaseError(operation string, err error, userID uint64, game string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"game":    game,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrGameBalanceNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) || r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByUserAndGame retrieves the mirror balance for a (player, game) pair
func (r *GameBalanceRepository) GetByUserAndGame(ctx context.Context, userID uint64, game string) (*entity.GameBalance, error) {
	var balanceModel model.GameBalance
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game = ?", userID, game).
		First(&balanceModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrGameBalanceNotFound
		}
		return nil, r.handleDatabaseError("getting game balance", result.Error, userID, game)
	}

	return r.modelToEntity(&balanceModel), nil
}

// Create creates the mirror balance on first contact for a (player, game) pair
func (r *GameBalanceRepository) Create(ctx context.Context, balance *entity.GameBalance) error {
	r.logger.Debug("Creating game balance", map[string]any{
		"user_id":             balance.UserID,
		"game":                balance.Game,
		"last_balance":        balance.LastBalance.String(),
		"current_bot_balance": balance.CurrentBotBalance.String(),
	})

	balanceModel := model.GameBalance{
		UserID:            balance.UserID,
		Game:              balance.Game,
		LastBalance:       balance.LastBalance,
		CurrentBotBalance: balance.CurrentBotBalance,
		CreatedAt:         balance.CreatedAt,
		UpdatedAt:         balance.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&balanceModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating game balance", result.Error, balance.UserID, balance.Game)
	}

	balance.ID = balanceModel.ID
	return nil
}

// UpdateLastBalance persists last_balance only
func (r *GameBalanceRepository) UpdateLastBalance(ctx context.Context, balance *entity.GameBalance) error {
	return r.updateColumn(ctx, balance, "last_balance", balance.LastBalance)
}

// UpdateBotBalance persists current_bot_balance only
func (r *GameBalanceRepository) UpdateBotBalance(ctx context.Context, balance *entity.GameBalance) error {
	return r.updateColumn(ctx, balance, "current_bot_balance", balance.CurrentBotBalance)
}

// updateColumn writes a single balance column plus updated_at
func (r *GameBalanceRepository) updateColumn(ctx context.Context, balance *entity.GameBalance, column string, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.GameBalance{}).
		Where("id = ?", balance.ID).
		Updates(map[string]interface{}{
			column:       value,
			"updated_at": balance.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating "+column, result.Error, balance.UserID, balance.Game)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Game balance not found during update", map[string]any{
			"user_id": balance.UserID,
			"game":    balance.Game,
			"column":  column,
		})
		return errs.ErrGameBalanceNotFound
	}

	return nil
}

// ListByUser retrieves all mirror balances for a player
func (r *GameBalanceRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.GameBalance, error) {
	var balanceModels []model.GameBalance
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("game ASC").
		Find(&balanceModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing game balances", result.Error, userID, "")
	}

	balances := make([]*entity.GameBalance, 0, len(balanceModels))
	for i := range balanceModels {
		balances = append(balances, r.modelToEntity(&balanceModels[i]))
	}
	return balances, nil
}
