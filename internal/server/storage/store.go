// Package storage defines the ciphertext store the core writes encrypted
// blobs through, plus an S3-compatible implementation. The store only ever
// sees opaque bytes.
package storage

import "context"

// CiphertextStore is the narrow collaborator interface for ciphertext
// blobs. Get returns common.ErrNotFound for an unknown locator.
type CiphertextStore interface {
	Put(ctx context.Context, locator string, data []byte) error
	Get(ctx context.Context, locator string) ([]byte, error)
	Delete(ctx context.Context, locator string) error
}
