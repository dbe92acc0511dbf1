package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.Get] when the key has no value.
var ErrNotFound = errors.New("kv: key not found")

// ErrUnavailable is returned when the backing store cannot be reached or
// a read/write fails for infrastructure reasons.
var ErrUnavailable = errors.New("kv: store unavailable")

// Store is the durable key-value surface the engine's stores are built on.
// Implementations must be safe for concurrent use.
//
// Store instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Store interface {
	// Get returns the value stored at key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value at key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
