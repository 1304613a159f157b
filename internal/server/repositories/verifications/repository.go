package verifications

import (
	"context"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
)

// Repository persists one-time-code records. RegisterAttempt and Consume
// must be conditional single-statement updates: the attempt counter is the
// guessing budget and must hold under concurrent submissions.
type Repository interface {
	Create(ctx context.Context, v *models.Verification) (*models.Verification, error)

	// GetLatestActive returns the most recently issued unconsumed record
	// for (shareID, channel), or common.ErrNotFound.
	GetLatestActive(ctx context.Context, shareID, channel string) (*models.Verification, error)

	// CountIssuedSince reports how many codes were issued to channel at or
	// after since, and the oldest issuance time among them (zero when none).
	// Drives the trailing-window rate limit.
	CountIssuedSince(ctx context.Context, channel string, since time.Time) (int, time.Time, error)

	// RegisterAttempt increments attempts under the condition
	// attempts < max_attempts AND consumed_at IS NULL, returning the new
	// counter value. common.ErrConditionFailed means the budget is spent
	// or the record is already consumed.
	RegisterAttempt(ctx context.Context, id string) (int, error)

	// Consume sets consumed_at exactly once. common.ErrConditionFailed
	// means another request consumed the record first.
	Consume(ctx context.Context, id string, now time.Time) error

	// InvalidateActive expires all still-checkable records for
	// (shareID, channel) so a reissued code is the only valid one.
	// Returns how many records were invalidated.
	InvalidateActive(ctx context.Context, shareID, channel string, now time.Time) (int64, error)
}
