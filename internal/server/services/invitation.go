package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/logging"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/config"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/repomanager"
)

// InvitationService manages invitation tokens that pre-bind a recipient
// channel to a share. Status moves pending -> accepted|expired|cancelled,
// never back.
type InvitationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	validity    time.Duration

	now func() time.Time
}

func NewInvitationService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *InvitationService {
	return &InvitationService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "invitations"),
		validity:    cfg.InvitationValidityDuration,
		now:         time.Now,
	}
}

// Create issues an invitation for (shareID, channel). The share must still
// be accessible.
func (s *InvitationService) Create(ctx context.Context, shareID, channel string) (*models.Invitation, error) {
	now := s.now()

	share, err := s.repomanager.Shares(s.db).Get(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if !share.Accessible(now) {
		return nil, common.ErrShareGone
	}

	token, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, common.ErrInternal
	}

	inv := &models.Invitation{
		Token:            token,
		ShareID:          shareID,
		RecipientChannel: channel,
		ExpiresAt:        now.Add(s.validity),
		Status:           models.InvitationPending,
	}
	return s.repomanager.Invitations(s.db).Create(ctx, inv)
}

// Accept transitions a pending invitation to accepted and returns it. An
// invitation past its deadline is transitioned to expired instead and the
// call fails with ErrInvitationClosed, as it does for any non-pending
// status.
func (s *InvitationService) Accept(ctx context.Context, token string) (*models.Invitation, error) {
	repo := s.repomanager.Invitations(s.db)

	inv, err := repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvitationPending {
		return nil, common.ErrInvitationClosed
	}

	if s.now().After(inv.ExpiresAt) {
		// lazy expiry; ignore a lost race, the status is terminal either way
		if err := repo.UpdateStatus(ctx, token, models.InvitationPending, models.InvitationExpired); err != nil && !errors.Is(err, common.ErrConditionFailed) {
			return nil, err
		}
		return nil, common.ErrInvitationClosed
	}

	if err := repo.UpdateStatus(ctx, token, models.InvitationPending, models.InvitationAccepted); err != nil {
		if errors.Is(err, common.ErrConditionFailed) {
			return nil, common.ErrInvitationClosed
		}
		return nil, err
	}

	inv.Status = models.InvitationAccepted
	s.logger.Info(ctx, "invitation accepted", "share_id", inv.ShareID)
	return inv, nil
}

// Cancel transitions a pending invitation to cancelled. Cancelling an
// already cancelled invitation succeeds; other closed states fail with
// ErrInvitationClosed.
func (s *InvitationService) Cancel(ctx context.Context, token string) error {
	repo := s.repomanager.Invitations(s.db)

	if err := repo.UpdateStatus(ctx, token, models.InvitationPending, models.InvitationCancelled); err != nil {
		if !errors.Is(err, common.ErrConditionFailed) {
			return err
		}
		inv, getErr := repo.Get(ctx, token)
		if getErr != nil {
			return getErr
		}
		if inv.Status == models.InvitationCancelled {
			return nil
		}
		return common.ErrInvitationClosed
	}
	return nil
}
