package persistence

import (
	"context"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
)

// GameBalanceRepository defines methods to interact with per-(player, game) mirror
// balances. The last_balance and current_bot_balance fields are persisted through
// separate update methods so the disjoint-writer invariant stays mechanically
// enforceable.
type GameBalanceRepository interface {
	// GetByUserAndGame retrieves the mirror balance for a (player, game) pair
	//
	// Possible errors:
	// - ErrGameBalanceNotFound: If no mirror balance exists for the pair
	// - ErrDatabaseConnection: If database connection fails
	GetByUserAndGame(ctx context.Context, userID uint64, game string) (*entity.GameBalance, error)

	// Create creates the mirror balance on first contact for a (player, game) pair
	//
	// Possible errors:
	// - ErrConstraintViolation: If a record for the pair already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, balance *entity.GameBalance) error

	// UpdateLastBalance persists last_balance only. Used exclusively by
	// profile-snapshot updates.
	//
	// Possible errors:
	// - ErrGameBalanceNotFound: If the record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateLastBalance(ctx context.Context, balance *entity.GameBalance) error

	// UpdateBotBalance persists current_bot_balance only. Used exclusively by
	// accrual updates, including fixed-reward fan-out.
	//
	// Possible errors:
	// - ErrGameBalanceNotFound: If the record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateBotBalance(ctx context.Context, balance *entity.GameBalance) error

	// ListByUser retrieves all mirror balances for a player
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.GameBalance, error)
}
