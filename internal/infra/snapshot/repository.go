// Package snapshot persists opaque state blobs under string keys. It is the
// localStorage analog: the cart lives under one global key, each user's
// EcoPoints ledger under its own key. Implementations are swappable (file,
// sqlite, memory) and none of them interpret the blob.
package snapshot

import "context"

const CartKey = "ecotech-cart"

// LedgerKey returns the per-user key for an EcoPoints ledger snapshot.
func LedgerKey(userID string) string {
	return "ecopoints-" + userID
}

type Repository interface {
	// Load returns the blob stored under key, or a KindNotFound repository
	// error when nothing has been saved yet.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}
