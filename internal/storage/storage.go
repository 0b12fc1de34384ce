// Package storage defines the key-value persistence port used by every store
// and the storage key layout. Two implementations exist: a SQLite-backed one
// for the real application and an in-memory one for tests.
package storage

import "context"

// KV is a flat key-value byte store. There are no transactions; every write
// replaces the whole value under its key, so last-write-wins semantics apply.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any previous value.
//   - Delete of an absent key is a no-op.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
