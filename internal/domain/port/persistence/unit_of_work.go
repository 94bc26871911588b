package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating all balance mutations of one
// processed message inside a single storage transaction. The transaction boundary
// is the unit of atomicity: partial writes (such as several winners of a fan-out)
// become visible only on Commit and are discarded together on Rollback.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetGameBalanceRepository returns a game balance repository bound to the current transaction
	GetGameBalanceRepository(ctx context.Context) GameBalanceRepository

	// GetProcessedMessageRepository returns a processed message repository bound to the current transaction
	GetProcessedMessageRepository(ctx context.Context) ProcessedMessageRepository
}
