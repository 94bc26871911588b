package persistence

import (
	"context"
	"time"
)

// ProcessedMessageRepository defines the persisted fingerprint set used for
// idempotency. Fingerprints are write-once: never updated, never deleted.
type ProcessedMessageRepository interface {
	// Exists checks whether a fingerprint has already been marked processed
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Exists(ctx context.Context, fingerprint string) (bool, error)

	// Create marks a fingerprint processed
	//
	// Possible errors:
	// - ErrDuplicateMessage: If the fingerprint is already marked
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, fingerprint string, processedAt time.Time) error
}
