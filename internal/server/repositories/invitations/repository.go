package invitations

import (
	"context"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
)

// Repository persists invitations. Status moves one way only; UpdateStatus
// is a compare-and-set on the current status.
type Repository interface {
	Create(ctx context.Context, inv *models.Invitation) (*models.Invitation, error)
	Get(ctx context.Context, token string) (*models.Invitation, error)

	// UpdateStatus transitions from -> to for the given token. Returns
	// common.ErrConditionFailed when the stored status is not from.
	UpdateStatus(ctx context.Context, token string, from, to models.InvitationStatus) error
}
