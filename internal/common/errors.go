// Package common defines shared constants and sentinel errors used across
// the sharing core. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	// ErrConditionFailed reports that a conditional update matched no row.
	ErrConditionFailed = errors.New("condition failed")

	// Key derivation errors.
	ErrInvalidSecret = errors.New("invalid secret")
	ErrInvalidSalt   = errors.New("invalid salt")

	// ErrAuthenticationFailure is the single cipher-level failure.
	// It deliberately covers wrong key, wrong nonce and tampered
	// ciphertext without distinguishing them.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// Verification gate errors.
	ErrNoActiveChallenge = errors.New("no active challenge")
	ErrChallengeExpired  = errors.New("challenge expired")
	ErrAttemptsExhausted = errors.New("attempts exhausted")

	// ErrShareGone marks a share that exists but is consumed, expired
	// or revoked. Distinct from ErrNotFound: the identifier is valid.
	ErrShareGone = errors.New("share gone")

	// ErrWrongSecret is the post-gate decryption failure: the one-time
	// code was right, the passcode used for key derivation was not.
	ErrWrongSecret = errors.New("wrong secret")

	// ErrDelivery wraps channel send failures. Non-fatal: the
	// verification record stays valid and delivery can be retried.
	ErrDelivery = errors.New("delivery error")

	// Grant lifecycle errors.
	ErrInvalidGrant = errors.New("invalid grant")

	// Invitation lifecycle errors.
	ErrInvitationClosed = errors.New("invitation closed")

	ErrInternal = errors.New("internal error")
)

// WrongCodeError reports a mismatched one-time code and the remaining
// guessing budget. It never reveals anything about the stored code.
type WrongCodeError struct {
	RemainingAttempts int
}

func (e *WrongCodeError) Error() string {
	return fmt.Sprintf("wrong code, %d attempts remaining", e.RemainingAttempts)
}

// RateLimitError reports that code issuance for a channel is throttled.
// RetryAfter tells the caller when the trailing window frees a slot.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter.Round(time.Second))
}
