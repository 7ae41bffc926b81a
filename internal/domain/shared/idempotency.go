package shared

import (
	"context"
	"time"
)

// IdempotencyStore records client-supplied idempotency keys so that a retried
// request replays its first outcome instead of executing twice.
type IdempotencyStore interface {
	// Acquire claims key for ttl. It returns false when the key is already
	// claimed, either by a finished request or one still in flight.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Store attaches the serialized outcome of the request that claimed key.
	Store(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Load returns the stored outcome. found is false while the claiming
	// request is still in flight or after the key expired.
	Load(ctx context.Context, key string) (payload []byte, found bool, err error)

	// Release drops a claim so the request may be retried.
	Release(ctx context.Context, key string) error

	// Close releases resources held by the store
	Close() error
}

// IdempotencyConfig holds configuration for idempotency handling
type IdempotencyConfig struct {
	// TTL is how long a key and its stored outcome are kept
	TTL time.Duration

	// Enabled determines whether idempotency checking is enabled
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
