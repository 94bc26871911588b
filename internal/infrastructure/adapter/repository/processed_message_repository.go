package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProcessedMessageRepository implements the fingerprint set using GORM
type ProcessedMessageRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProcessedMessageRepository creates a new ProcessedMessageRepository instance
func NewProcessedMessageRepository(db *gorm.DB, logger coreport.Logger) *ProcessedMessageRepository {
	return &ProcessedMessageRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Exists checks whether a fingerprint has already been marked processed
func (r *ProcessedMessageRepository) Exists(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProcessedMessage{}).
		Where("fingerprint = ?", fingerprint).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Database error when checking fingerprint", map[string]any{
			"fingerprint": fingerprint,
			"error":       result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count > 0, nil
}

// Create marks a fingerprint processed. The unique index makes double marking a
// constraint violation surfaced as ErrDuplicateMessage.
func (r *ProcessedMessageRepository) Create(ctx context.Context, fingerprint string, processedAt time.Time) error {
	messageModel := model.ProcessedMessage{
		Fingerprint: fingerprint,
		ProcessedAt: processedAt,
	}

	result := r.db.WithContext(ctx).Create(&messageModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Fingerprint already marked processed", map[string]any{
				"fingerprint": fingerprint,
			})
			return errs.ErrDuplicateMessage
		}
		r.logger.Error("Database error when marking fingerprint", map[string]any{
			"fingerprint": fingerprint,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}
