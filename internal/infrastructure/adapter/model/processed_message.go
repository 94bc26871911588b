package model

import (
	"time"
)

// ProcessedMessage represents the database model for the idempotency fingerprint set.
// Rows are write-once: never updated, never deleted.
type ProcessedMessage struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Fingerprint string    `gorm:"uniqueIndex;not null;size:64"`
	ProcessedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ProcessedMessage
func (ProcessedMessage) TableName() string {
	return "processed_messages"
}
