package models

import "time"

// Verification is one issued one-time code bound to a share and a
// recipient channel. Only the latest unconsumed record per (share,
// channel) is authoritative; reissue invalidates older ones.
type Verification struct {
	ID      string
	ShareID string
	// Channel is the out-of-band destination the code was sent to,
	// e.g. "sms:+155500", "email:bob@example.com".
	Channel string

	// CodeHash is the SHA-256 of the code. The plaintext code exists
	// only in the delivery message.
	CodeHash []byte

	IssuedAt  time.Time
	ExpiresAt time.Time

	// Attempts counts submitted checks; monotonically non-decreasing,
	// incremented before the comparison result is known.
	Attempts    int
	MaxAttempts int

	// ConsumedAt is set at most once, on a correct-code match.
	ConsumedAt *time.Time
}

// Checkable reports whether a submitted code may still be evaluated
// against this record.
func (v *Verification) Checkable(now time.Time) bool {
	return v.ConsumedAt == nil && now.Before(v.ExpiresAt) && v.Attempts < v.MaxAttempts
}
