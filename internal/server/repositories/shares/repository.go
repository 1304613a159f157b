package shares

import (
	"context"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
)

// Repository persists share records. Implementations must make
// RegisterDownload and MarkExpired single atomic read-modify-writes so
// concurrent downloads cannot both consume a burn-after-read share.
type Repository interface {
	Create(ctx context.Context, share *models.Share) (*models.Share, error)

	// Get returns the stored record as-is; callers evaluate expiry
	// lazily via Share.Accessible. Returns common.ErrNotFound for an
	// unknown id.
	Get(ctx context.Context, id string) (*models.Share, error)

	// RegisterDownload atomically increments the download counter and,
	// for burn-after-read shares, flips active -> consumed in the same
	// statement. The condition requires the share to be active, within
	// its expiry, and (for burn shares) never downloaded before.
	// Returns common.ErrConditionFailed when the condition does not hold.
	RegisterDownload(ctx context.Context, id string, now time.Time) (*models.Share, error)

	// MarkExpired transitions active -> expired once the deadline has
	// passed. Reports whether this call performed the transition, so the
	// caller can delete the ciphertext exactly once.
	MarkExpired(ctx context.Context, id string, now time.Time) (bool, error)

	// Revoke transitions active -> revoked. Idempotent: revoking an
	// already revoked share succeeds. Other terminal states return
	// common.ErrShareGone.
	Revoke(ctx context.Context, id string) error

	// SelectExpired lists shares whose deadline has passed but whose
	// stored status is still active, for the cleanup sweep.
	SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.Share, error)
}
