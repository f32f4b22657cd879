package kv

import (
	"context"
	"errors"
)

// Store is the durable per-user key-value contract backing the order history.
// Consumers define this interface, not the Redis implementation.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

var ErrKeyNotFound = errors.New("key not found")
