package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
)

// User represents a player ledger record holding the unified cross-game bank balance
type User struct {
	ID          uint64          // System-assigned identifier
	UserName    string          // Normalized display name, the stable player key
	BankBalance decimal.Decimal // Unified fungible balance across all games
	CreatedAt   time.Time       // When the ledger record was created
	UpdatedAt   time.Time       // When the ledger record was last updated
}

// NewUser creates a new player ledger record with a zero bank balance
func NewUser(userName string, timeProvider coreport.TimeProvider) (*User, error) {
	name := NormalizeUserName(userName)
	if name == "" {
		return nil, errs.NewParseError("", "player name", errs.ErrMissingField)
	}

	now := timeProvider.Now()
	return &User{
		UserName:    name,
		BankBalance: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NormalizeUserName produces the stable ledger key for a reported display name.
// Games report names verbatim, so only surrounding whitespace is stripped;
// case folding could merge distinct players.
func NormalizeUserName(userName string) string {
	return strings.TrimSpace(userName)
}

// AddToBank applies a signed delta to the bank balance.
// The delta may be negative when an external absolute value decreased.
func (u *User) AddToBank(delta decimal.Decimal, timeProvider coreport.TimeProvider) {
	u.BankBalance = u.BankBalance.Add(delta)
	u.UpdatedAt = timeProvider.Now()
}
