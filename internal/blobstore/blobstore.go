// Package blobstore persists client state as opaque JSON blobs under fixed
// keys, standing in for the browser's local storage.
package blobstore

import "context"

// Storage keys. Each holds one JSON-serialized blob.
const (
	KeyCart           = "cart"
	KeyUser           = "user"
	KeyAdmin          = "admin"
	KeyAddresses      = "userAddresses"
	KeyPaymentMethods = "userPaymentMethods"
)

// Store is a key-value blob store. Get returns domain.ErrNotFound for an
// absent key; Delete of an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
