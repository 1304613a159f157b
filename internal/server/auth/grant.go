// Package auth mints and checks decryption grants: short-lived proofs that
// the verification gate was passed for a given share and channel. A grant
// is handed straight to the download pipeline and never stored.
package auth

import (
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GrantClaims binds a grant to the share and the verified channel.
type GrantClaims struct {
	jwt.RegisteredClaims
	ShareID string `json:"share_id"`
	Channel string `json:"channel"`
}

// GenerateGrant signs a grant token (HS256) for shareID and channel.
func GenerateGrant(shareID, channel string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, GrantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		ShareID: shareID,
		Channel: channel,
	})

	return token.SignedString(secretKey)
}

// ParseGrant validates a grant token and returns its claims. Any signature,
// format or expiry problem yields common.ErrInvalidGrant.
func ParseGrant(tokenString string, secretKey []byte) (*GrantClaims, error) {
	claims := &GrantClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidGrant
	}

	return claims, nil
}
