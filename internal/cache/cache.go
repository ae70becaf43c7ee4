// Package cache provides the key-value storage callers inject into the
// services layer. Backends must be safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Storage is the read/write/clear contract. Read returns ok=false for a
// missing or expired key without an error.
type Storage interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
