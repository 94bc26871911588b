package message

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/port/persistence"
)

// IdempotencyChecker guards the processing pipeline against duplicate delivery.
// The fingerprint covers the raw text and the timestamp's canonical form: the same
// announcement repeated at a new timestamp is a distinct event by design.
type IdempotencyChecker struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyChecker creates a new IdempotencyChecker
func NewIdempotencyChecker(uow persistence.UnitOfWork) *IdempotencyChecker {
	return &IdempotencyChecker{uow: uow}
}

// Fingerprint computes the deterministic dedup token for a (text, timestamp) pair
func (c *IdempotencyChecker) Fingerprint(text string, timestamp time.Time) string {
	canonical := timestamp.UTC().Format(time.RFC3339Nano)
	sum := sha256.Sum256([]byte(text + "\x00" + canonical))
	return hex.EncodeToString(sum[:])
}

// IsProcessed checks the persisted fingerprint set. Run outside a transaction this
// reads committed state; inside one it sees the transaction's view.
func (c *IdempotencyChecker) IsProcessed(ctx context.Context, fingerprint string) (bool, error) {
	processed, err := c.uow.GetProcessedMessageRepository(ctx).Exists(ctx, fingerprint)
	if err != nil {
		return false, fmt.Errorf("failed to check message fingerprint: %w", err)
	}
	return processed, nil
}

// MarkProcessed records a fingerprint in the set. Called with a transactional
// context so the mark commits or rolls back with the balance mutations it covers.
func (c *IdempotencyChecker) MarkProcessed(ctx context.Context, fingerprint string, processedAt time.Time) error {
	if err := c.uow.GetProcessedMessageRepository(ctx).Create(ctx, fingerprint, processedAt); err != nil {
		return fmt.Errorf("failed to mark message processed: %w", err)
	}
	return nil
}
