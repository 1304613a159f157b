package cryptox

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
)

// NonceSize is the AES-GCM nonce length in bytes.
const NonceSize = 12

// Encrypt seals plaintext under key with AES-256-GCM. A fresh random
// 12-byte nonce is generated on every call and returned separately; it is
// never derived from the key or reused.
func Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext with key and nonce. Any mismatch, whether a
// wrong key, a wrong nonce or tampered ciphertext, fails closed with
// common.ErrAuthenticationFailure; no partial plaintext is ever returned
// and the cause is not distinguishable from the outside.
func Decrypt(ciphertext, key, nonce []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.ErrAuthenticationFailure
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.ErrAuthenticationFailure
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, common.ErrAuthenticationFailure
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrAuthenticationFailure
	}
	return plaintext, nil
}

// EncryptString seals a metadata string (e.g. a filename) under key.
// Used with the master key so names are as opaque to the server as the
// file bytes are under the file key.
func EncryptString(s string, key []byte) (ciphertext, nonce []byte, err error) {
	return Encrypt([]byte(s), key)
}

// DecryptString opens a metadata envelope produced by EncryptString.
func DecryptString(ciphertext, key, nonce []byte) (string, error) {
	b, err := Decrypt(ciphertext, key, nonce)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
