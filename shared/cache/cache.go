// Package cache provides the key-value cache used as a read-through
// accelerator in front of PostgreSQL. Implementations carry no correctness
// obligation: callers treat every error as a miss and fall back to the
// primary store.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: key not found")

// Cache is a key-value store with per-key expiry.
type Cache interface {
	// Get returns the value stored under key, or ErrMiss.
	Get(ctx context.Context, key string) (string, error)

	// SetWithExpiry stores value under key with the given TTL.
	SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error
}

// Noop is the null-object Cache used when Redis is unreachable at startup.
// Get always misses and SetWithExpiry discards the value, so call sites
// need no "cache enabled" branching.
type Noop struct{}

// NewNoop returns a Cache that never stores anything.
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Get(ctx context.Context, key string) (string, error) {
	return "", ErrMiss
}

func (*Noop) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
