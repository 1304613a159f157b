package cryptox

import "github.com/balahero03/Zero-Trust-Share-sub000/internal/common"

// Envelope bundles ciphertext with the salt and nonce needed to open it
// again. The secret itself is never part of the envelope.
type Envelope struct {
	Ciphertext []byte
	Salt       []byte
	Nonce      []byte
}

// Seal derives a fresh key from secret (generating a new salt), encrypts
// plaintext under it and wipes the key before returning. Each call yields
// an independent salt, so envelopes never share keys even for one secret.
func Seal(plaintext []byte, secret string) (*Envelope, error) {
	key, salt, err := Derive(secret, nil)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	ciphertext, nonce, err := Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}
	return &Envelope{Ciphertext: ciphertext, Salt: salt, Nonce: nonce}, nil
}

// Open re-derives the key from secret and the envelope salt and decrypts.
// The key is wiped before returning.
func Open(env *Envelope, secret string) ([]byte, error) {
	key, _, err := Derive(secret, env.Salt)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	return Decrypt(env.Ciphertext, key, env.Nonce)
}
