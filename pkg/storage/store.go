package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound = errors.New("key not found")
	// ErrExpired matches ErrNotFound so callers can treat both as absence.
	ErrExpired = fmt.Errorf("%w: entry expired", ErrNotFound)

	ErrEmptyNamespace = errors.New("namespace cannot be empty")
	ErrNilClient      = errors.New("redis client cannot be nil")
)

// Store is a namespaced key-value store with optional per-entry expiry.
// Values are JSON-encoded; Get decodes into dest, which must be a pointer.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, dest any) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	// Clear removes every key in the store's namespace, leaving other
	// namespaces untouched.
	Clear(ctx context.Context) error
}
