// Package storage provides the key-value media a named record can be
// persisted to: a SQL table through gorm, a directory of files, or memory.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no record exists under the key.
var ErrNotFound = errors.New("record not found")

// KV stores opaque values under string keys. Put replaces the whole value
// atomically: a concurrent or later Get sees either the old or the new value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
