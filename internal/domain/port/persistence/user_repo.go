package persistence

import (
	"context"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
)

// UserRepository defines essential methods to interact with player ledger records
type UserRepository interface {
	// GetByName retrieves a player ledger record by its normalized display name
	//
	// Possible errors:
	// - ErrUserNotFound: If no ledger record exists for the name
	// - ErrDatabaseConnection: If database connection fails
	GetByName(ctx context.Context, userName string) (*entity.User, error)

	// Create creates a new player ledger record and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If a record with the same name already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateBankBalance persists the unified bank balance of an existing record.
	// This is the only write path for bank_balance.
	//
	// Possible errors:
	// - ErrUserNotFound: If the record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateBankBalance(ctx context.Context, user *entity.User) error
}
