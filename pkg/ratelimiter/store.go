package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state per key.
type Store interface {
	// ConsumeTokens takes tokens from the bucket of key when enough are
	// left and reports whether it did, the tokens left and the time of the
	// next refill.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (allowed bool, remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
