package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the database model for player ledger records
type User struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	UserName    string          `gorm:"uniqueIndex;not null;size:255"`
	BankBalance decimal.Decimal `gorm:"type:numeric(20,5);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
