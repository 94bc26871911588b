package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GameBalance represents the database model for per-(player, game) mirror balances
type GameBalance struct {
	ID                uint64          `gorm:"primaryKey;autoIncrement"`
	UserID            uint64          `gorm:"not null;uniqueIndex:idx_game_balances_user_game"`
	Game              string          `gorm:"not null;size:100;uniqueIndex:idx_game_balances_user_game"`
	LastBalance       decimal.Decimal `gorm:"type:numeric(20,5);not null"`
	CurrentBotBalance decimal.Decimal `gorm:"type:numeric(20,5);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for GameBalance
func (GameBalance) TableName() string {
	return "game_balances"
}
