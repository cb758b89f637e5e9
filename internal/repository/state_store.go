package repository

import (
	"context"
	"time"
)

// StateStore abstracts ephemeral key-value state, here used for staff token
// revocation marks. Implementations: Redis (production) or in-memory
// (local dev / single-instance).
type StateStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
