package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/logging"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/config"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/repomanager"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/storage"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/sharelink"
	"github.com/google/uuid"
)

// Presigner is the optional direct-upload surface of the ciphertext
// store. Satisfied by *storage.S3Store.
type Presigner interface {
	PresignedPutURL(ctx context.Context, locator string) (string, error)
}

// CreateShareParams carries everything the server stores about a new
// share. All payload fields arrive already encrypted; the server never
// sees the plaintext or the passcode.
type CreateShareParams struct {
	OwnerRef string

	Ciphertext []byte
	FileSalt   []byte
	FileNonce  []byte

	NameCiphertext []byte
	NameNonce      []byte
	NameSalt       []byte

	BurnAfterRead bool
	ExpiresAt     *time.Time

	// StorageKey references ciphertext already staged through a presigned
	// upload. When set, Ciphertext is ignored and no blob is written here;
	// FileSize then reports the size of the staged object.
	StorageKey string
	FileSize   int64
}

// ShareService owns the share lifecycle: creation, revocation, lazy expiry
// and the cleanup sweep.
type ShareService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.CiphertextStore
	presigner   Presigner
	logger      logging.Logger
	linkBase    string

	now func() time.Time
}

// NewShareService constructs a ShareService. presigner may be nil when the
// backing store cannot issue presigned URLs.
func NewShareService(db *sql.DB, m repomanager.RepositoryManager, store storage.CiphertextStore, presigner Presigner, l logging.Logger, cfg *config.Config) *ShareService {
	return &ShareService{
		db:          db,
		repomanager: m,
		store:       store,
		presigner:   presigner,
		logger:      l.With("module", "shares"),
		linkBase:    cfg.LinkBaseURL,
		now:         time.Now,
	}
}

// CreateShare stores the ciphertext blob (unless it was staged through a
// presigned upload), persists the share record and returns it together with
// the share link. The link fragment carries the file salt and must never be
// logged server-side.
func (s *ShareService) CreateShare(ctx context.Context, params CreateShareParams) (*models.Share, string, error) {
	staged := params.StorageKey != ""
	key := params.StorageKey
	size := int64(len(params.Ciphertext))
	if !staged {
		key = storage.RandomStorageKey()
	} else {
		size = params.FileSize
	}

	share := &models.Share{
		ID:             uuid.NewString(),
		OwnerRef:       params.OwnerRef,
		StorageKey:     key,
		FileSize:       size,
		NameCiphertext: params.NameCiphertext,
		NameNonce:      params.NameNonce,
		NameSalt:       params.NameSalt,
		FileSalt:       params.FileSalt,
		FileNonce:      params.FileNonce,
		BurnAfterRead:  params.BurnAfterRead,
		ExpiresAt:      params.ExpiresAt,
		Status:         models.ShareActive,
	}

	link, err := sharelink.Build(s.linkBase, share.ID, share.FileSalt)
	if err != nil {
		return nil, "", err
	}

	if !staged {
		if err := s.store.Put(ctx, share.StorageKey, params.Ciphertext); err != nil {
			return nil, "", fmt.Errorf("storing ciphertext: %w", err)
		}
	}

	repo := s.repomanager.Shares(s.db)
	if _, err := repo.Create(ctx, share); err != nil {
		// do not leave an orphaned blob behind
		if delErr := s.store.Delete(ctx, share.StorageKey); delErr != nil {
			s.logger.Warn(ctx, "orphaned ciphertext cleanup failed", "storage_key", share.StorageKey)
		}
		return nil, "", err
	}

	s.logger.Info(ctx, "share created", "share_id", share.ID, "burn", share.BurnAfterRead)
	return share, link, nil
}

// PresignUpload reserves a storage key and returns a presigned PUT URL for
// a sender to upload ciphertext directly to object storage.
func (s *ShareService) PresignUpload(ctx context.Context) (string, string, error) {
	if s.presigner == nil {
		return "", "", common.ErrInternal
	}
	key := storage.RandomStorageKey()
	url, err := s.presigner.PresignedPutURL(ctx, key)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

// GetAccessible loads a share and lazily applies expiry: a record past its
// deadline is transitioned to expired, its ciphertext deleted, and the
// access fails with ErrShareGone. Terminal records always fail with
// ErrShareGone; unknown ids with ErrNotFound.
func (s *ShareService) GetAccessible(ctx context.Context, id string) (*models.Share, error) {
	repo := s.repomanager.Shares(s.db)
	share, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if share.Accessible(now) {
		return share, nil
	}

	if share.Status == models.ShareActive {
		// stored active but past its deadline
		transitioned, err := repo.MarkExpired(ctx, id, now)
		if err != nil {
			return nil, err
		}
		if transitioned {
			s.deleteCiphertext(ctx, share)
		}
	}
	return nil, common.ErrShareGone
}

// Revoke terminates a share on the owner's request and deletes its
// ciphertext. Revoking an already revoked share is a no-op.
func (s *ShareService) Revoke(ctx context.Context, id string) error {
	repo := s.repomanager.Shares(s.db)
	share, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := repo.Revoke(ctx, id); err != nil {
		return err
	}
	s.deleteCiphertext(ctx, share)
	s.logger.Info(ctx, "share revoked", "share_id", id)
	return nil
}

// PurgeExpired sweeps shares whose deadline passed while nobody touched
// them, transitioning each and deleting its ciphertext. Returns how many
// shares were purged.
func (s *ShareService) PurgeExpired(ctx context.Context, limit int) (int, error) {
	repo := s.repomanager.Shares(s.db)
	now := s.now()

	expired, err := repo.SelectExpired(ctx, now, limit)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, share := range expired {
		transitioned, err := repo.MarkExpired(ctx, share.ID, now)
		if err != nil {
			return purged, err
		}
		if !transitioned {
			continue // someone else got there first
		}
		s.deleteCiphertext(ctx, share)
		purged++
	}

	if purged > 0 {
		s.logger.Info(ctx, "expired shares purged", "count", purged)
	}
	return purged, nil
}

// RunPurgeLoop runs PurgeExpired on a ticker until ctx is cancelled.
func (s *ShareService) RunPurgeLoop(ctx context.Context, interval time.Duration, batch int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.PurgeExpired(ctx, batch); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error(ctx, "purge sweep failed", "error", err.Error())
			}
		}
	}
}

func (s *ShareService) deleteCiphertext(ctx context.Context, share *models.Share) {
	if err := s.store.Delete(ctx, share.StorageKey); err != nil {
		// the record is already terminal; the sweep can retry the blob
		s.logger.Warn(ctx, "ciphertext delete failed", "share_id", share.ID)
	}
}
