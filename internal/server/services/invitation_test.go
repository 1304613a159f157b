package services

import (
	"context"
	"testing"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvitationFixture(t *testing.T) (*InvitationService, *fakeRepoManager, *time.Time) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	rm := newFakeRepoManager()
	svc := NewInvitationService(db, rm, testLogger(), testConfig())

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }
	return svc, rm, &clock
}

func TestInvitationCreate(t *testing.T) {
	t.Run("issues a pending invitation", func(t *testing.T) {
		svc, rm, clock := newInvitationFixture(t)
		rm.s.put(&models.Share{ID: "share1", Status: models.ShareActive})

		inv, err := svc.Create(context.Background(), "share1", "email:bob@example.com")
		require.NoError(t, err)

		assert.Equal(t, models.InvitationPending, inv.Status)
		assert.Equal(t, "share1", inv.ShareID)
		assert.NotEmpty(t, inv.Token)
		assert.Equal(t, clock.Add(svc.validity), inv.ExpiresAt)
	})

	t.Run("inaccessible share", func(t *testing.T) {
		svc, rm, _ := newInvitationFixture(t)
		rm.s.put(&models.Share{ID: "share1", Status: models.ShareRevoked})

		_, err := svc.Create(context.Background(), "share1", "email:bob@example.com")
		assert.ErrorIs(t, err, common.ErrShareGone)
	})

	t.Run("unknown share", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t)
		_, err := svc.Create(context.Background(), "nope", "email:bob@example.com")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestInvitationAccept(t *testing.T) {
	t.Run("pending invitation", func(t *testing.T) {
		svc, rm, _ := newInvitationFixture(t)
		rm.s.put(&models.Share{ID: "share1", Status: models.ShareActive})
		inv, err := svc.Create(context.Background(), "share1", "email:bob@example.com")
		require.NoError(t, err)

		accepted, err := svc.Accept(context.Background(), inv.Token)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationAccepted, accepted.Status)

		// accepting twice is closed
		_, err = svc.Accept(context.Background(), inv.Token)
		assert.ErrorIs(t, err, common.ErrInvitationClosed)
	})

	t.Run("expired invitation transitions lazily", func(t *testing.T) {
		svc, rm, clock := newInvitationFixture(t)
		rm.s.put(&models.Share{ID: "share1", Status: models.ShareActive})
		inv, err := svc.Create(context.Background(), "share1", "email:bob@example.com")
		require.NoError(t, err)

		*clock = clock.Add(svc.validity + time.Second)

		_, err = svc.Accept(context.Background(), inv.Token)
		assert.ErrorIs(t, err, common.ErrInvitationClosed)

		stored, getErr := rm.i.Get(context.Background(), inv.Token)
		require.NoError(t, getErr)
		assert.Equal(t, models.InvitationExpired, stored.Status)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, _, _ := newInvitationFixture(t)
		_, err := svc.Accept(context.Background(), "nope")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestInvitationCancel(t *testing.T) {
	svc, rm, _ := newInvitationFixture(t)
	rm.s.put(&models.Share{ID: "share1", Status: models.ShareActive})
	inv, err := svc.Create(context.Background(), "share1", "email:bob@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), inv.Token))
	stored, err := rm.i.Get(context.Background(), inv.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationCancelled, stored.Status)

	// cancelling again succeeds
	assert.NoError(t, svc.Cancel(context.Background(), inv.Token))

	// but an accepted invitation cannot be cancelled
	rm.i.invs[inv.Token].Status = models.InvitationAccepted
	assert.ErrorIs(t, svc.Cancel(context.Background(), inv.Token), common.ErrInvitationClosed)
}
