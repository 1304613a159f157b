// Package models defines server-side data models persisted in the database.
// All payload fields are opaque to the server: it stores ciphertext, salts
// and nonces, never plaintext or keys.
package models

import "time"

// ShareStatus is the lifecycle state of a share. Every transition out of
// ShareActive is terminal.
type ShareStatus string

const (
	ShareActive   ShareStatus = "active"
	ShareConsumed ShareStatus = "consumed" // burn-after-read, first download done
	ShareExpired  ShareStatus = "expired"
	ShareRevoked  ShareStatus = "revoked"
)

// Share describes one shared file.
type Share struct {
	// ID is the opaque identifier carried in the share link path.
	ID string
	// OwnerRef identifies the sender; the core treats it as opaque.
	OwnerRef string

	// StorageKey locates the ciphertext blob in object storage.
	StorageKey string
	// FileSize is the ciphertext size in bytes.
	FileSize int64

	// NameCiphertext and NameNonce form the filename envelope, sealed
	// under the owner's master key. NameSalt is the derivation salt of
	// that master key; it is generated independently of FileSalt.
	NameCiphertext []byte
	NameNonce      []byte
	NameSalt       []byte

	// FileSalt is the key-derivation salt for the per-file passcode.
	// Unique per share, never reused across files.
	FileSalt []byte
	// FileNonce is the AEAD nonce the file bytes were sealed with.
	FileNonce []byte

	BurnAfterRead bool
	ExpiresAt     *time.Time
	DownloadCount int
	Status        ShareStatus
	CreatedAt     time.Time
}

// Accessible reports whether the share may still be read at the given
// instant. Expiry is evaluated lazily: a stored status of ShareActive with
// a past ExpiresAt counts as inaccessible.
func (s *Share) Accessible(now time.Time) bool {
	if s.Status != ShareActive {
		return false
	}
	if s.ExpiresAt != nil && now.After(*s.ExpiresAt) {
		return false
	}
	return true
}
