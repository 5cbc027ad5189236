// Package storage provides the string-keyed, JSON-valued persistence port the
// progression services are written against, plus Redis, SQLite and in-memory
// implementations. Values are opaque UTF-8 strings; there are no transactions.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set or was deleted.
var ErrNotFound = errors.New("storage: key not found")

// Store is the key-value port. Implementations must treat values as opaque
// strings and must not invent data for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
