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

// UserRepository implements the UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:          userModel.ID,
		UserName:    userModel.UserName,
		BankBalance: userModel.BankBalance,
		CreatedAt:   userModel.CreatedAt,
		UpdatedAt:   userModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userName string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_name": userName,
		"error":     err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_name": userName,
		})
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByName retrieves a player ledger record by its normalized display name
func (r *UserRepository) GetByName(ctx context.Context, userName string) (*entity.User, error) {
	r.logger.Debug("Getting user by name", map[string]any{
		"user_name": userName,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user", result.Error, userName)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new player ledger record and assigns the generated ID back to
// the entity
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_name":    user.UserName,
		"bank_balance": user.BankBalance.String(),
	})

	userModel := model.User{
		UserName:    user.UserName,
		BankBalance: user.BankBalance,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.UserName)
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":   user.ID,
		"user_name": user.UserName,
	})
	return nil
}

// UpdateBankBalance persists the unified bank balance of an existing record
func (r *UserRepository) UpdateBankBalance(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Updating user bank balance", map[string]any{
		"user_id":      user.ID,
		"user_name":    user.UserName,
		"bank_balance": user.BankBalance.String(),
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"bank_balance": user.BankBalance,
			"updated_at":   user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user bank balance", result.Error, user.UserName)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during bank balance update", map[string]any{
			"user_id":   user.ID,
			"user_name": user.UserName,
		})
		return errs.ErrUserNotFound
	}

	return nil
}
