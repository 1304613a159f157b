// Package cryptox implements the zero-knowledge cryptographic primitives:
// passcode-based key derivation and authenticated encryption of file bytes
// and metadata. The server only ever sees salts, nonces and ciphertext;
// keys are recomputed on demand from secrets it never stores.
package cryptox

import (
	"crypto/sha256"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the derived symmetric key length in bytes (AES-256).
	KeySize = 32
	// SaltSize is the key-derivation salt length in bytes.
	SaltSize = 32

	// Argon2id parameters, OWASP profile. Deliberately slow so short
	// numeric passcodes resist offline brute force.
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

// Derive stretches a human secret into a 256-bit AEAD key using argon2id.
//
// If salt is nil, a fresh random salt is generated and returned alongside
// the key; the caller persists the salt, never the key. A supplied salt
// must be exactly SaltSize bytes.
//
// Derive is deterministic for identical (secret, salt) pairs, and distinct
// salts yield independent keys for the same secret. It never logs or
// retains its inputs.
func Derive(secret string, salt []byte) (key, outSalt []byte, err error) {
	if secret == "" {
		return nil, nil, common.ErrInvalidSecret
	}
	if salt == nil {
		salt = common.GenerateRandByteArray(SaltSize)
	} else if len(salt) != SaltSize {
		return nil, nil, common.ErrInvalidSalt
	}
	key = argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, KeySize)
	return key, salt, nil
}

// HashCode returns the SHA-256 digest of a one-time code. Only the digest
// is persisted; comparison is done in constant time by the gate.
func HashCode(code string) []byte {
	h := sha256.Sum256([]byte(code))
	return h[:]
}
