package cryptox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	plaintext := []byte("attack at dawn")

	ciphertext, nonce, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(nonce) != NonceSize {
		t.Fatalf("expected %d-byte nonce, got %d", NonceSize, len(nonce))
	}
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatalf("ciphertext equals plaintext")
	}

	got, err := Decrypt(ciphertext, key, nonce)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: %q != %q", got, plaintext)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)

	_, nonce1, err := Encrypt([]byte("p"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	_, nonce2, err := Encrypt([]byte("p"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Equal(nonce1, nonce2) {
		t.Fatalf("nonce reused across encryptions")
	}
}

// Flipping any single byte of ciphertext, nonce or key must fail closed.
func TestDecrypt_FailsClosedOnTampering(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	plaintext := []byte("hello world")

	ciphertext, nonce, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	flip := func(b []byte, i int) []byte {
		out := bytes.Clone(b)
		out[i] ^= 0x01
		return out
	}

	for i := range ciphertext {
		if _, err := Decrypt(flip(ciphertext, i), key, nonce); !errors.Is(err, common.ErrAuthenticationFailure) {
			t.Fatalf("ciphertext byte %d: expected ErrAuthenticationFailure, got %v", i, err)
		}
	}
	for i := range nonce {
		if _, err := Decrypt(ciphertext, key, flip(nonce, i)); !errors.Is(err, common.ErrAuthenticationFailure) {
			t.Fatalf("nonce byte %d: expected ErrAuthenticationFailure, got %v", i, err)
		}
	}
	for i := range key {
		if _, err := Decrypt(ciphertext, flip(key, i), nonce); !errors.Is(err, common.ErrAuthenticationFailure) {
			t.Fatalf("key byte %d: expected ErrAuthenticationFailure, got %v", i, err)
		}
	}
}

func TestDecrypt_BadNonceLength(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	ciphertext, _, err := Encrypt([]byte("p"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := Decrypt(ciphertext, key, make([]byte, NonceSize-1)); !errors.Is(err, common.ErrAuthenticationFailure) {
		t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
	}
}

// The reference vector from the verification suite: a wrong passcode derives
// a wrong key and must be indistinguishable from corrupted data.
func TestDecrypt_WrongSecretScenario(t *testing.T) {
	salt := bytes.Repeat([]byte{0x5a}, SaltSize)
	plaintext := []byte("hello world")

	rightKey, _, err := Derive("correct-horse", salt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	ciphertext, nonce, err := Encrypt(plaintext, rightKey)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := Decrypt(ciphertext, rightKey, nonce)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch")
	}

	wrongKey, _, err := Derive("wrong-horse", salt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if _, err := Decrypt(ciphertext, wrongKey, nonce); !errors.Is(err, common.ErrAuthenticationFailure) {
		t.Fatalf("expected ErrAuthenticationFailure, got %v", err)
	}
}

func TestEncryptString_RoundTrip(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)

	ciphertext, nonce, err := EncryptString("annual-report.pdf", key)
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}
	name, err := DecryptString(ciphertext, key, nonce)
	if err != nil {
		t.Fatalf("DecryptString error: %v", err)
	}
	if name != "annual-report.pdf" {
		t.Fatalf("unexpected name: %q", name)
	}
}
