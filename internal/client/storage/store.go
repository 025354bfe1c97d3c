// Package storage provides the durable on-device key-value store used for the
// auth token and small serialized blobs.
//
// All operations are best-effort: a storage failure must never crash a caller,
// so the interface exposes no errors. When the underlying engine cannot be
// initialized, Open returns a degraded store whose writes are suppressed and
// whose reads report absence.
package storage

import "context"

// Store is the minimal key-value contract consumed by the rest of the client.
type Store interface {
	// Set writes value under key. Failures are logged and swallowed.
	Set(ctx context.Context, key, value string)

	// GetString returns the value under key and whether it was present.
	GetString(ctx context.Context, key string) (string, bool)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string)
}
