// Package storage provides namespaced key-value stores with optional
// per-entry expiry, mirroring the thin persistence wrappers a page
// customization layer keeps around: remember a dismissed banner, a visitor's
// form draft, an A/B bucket.
//
// Values are JSON-encoded on write and decoded into a caller-supplied
// destination on read, so any marshalable type can be stored. All keys are
// scoped to the store's namespace; Clear only removes keys inside it.
//
// Two implementations are included:
//
//   - MemoryStore keeps entries in process memory with a capacity bound and
//     least-recently-used eviction.
//   - RedisStore keeps entries in Redis for state shared across instances.
//
// # Usage
//
//	store := storage.NewMemoryStore(1024)
//	if err := store.Set(ctx, "banner:dismissed", true, time.Hour); err != nil {
//	    // ...
//	}
//
//	var dismissed bool
//	err := store.Get(ctx, "banner:dismissed", &dismissed)
//	if errors.Is(err, storage.ErrNotFound) {
//	    // never set, or expired
//	}
//
// Expired entries are removed lazily on read and report ErrExpired, which
// also matches ErrNotFound so callers can treat both as absence.
package storage
