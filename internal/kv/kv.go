// Package kv provides the durable get/set-by-key textual store that
// backs the order ledger and the profile record. Callers treat it as a
// black box; the concrete backend is chosen at startup.
package kv

import (
	"context"
	"errors"
)

// Store defines the interface for durable key-value operations.
// Consumers define this interface, not the backends.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ErrNotFound is returned by Get when the key has never been written.
// Readers recover from it by treating the key as an empty record.
var ErrNotFound = errors.New("key not found")
