package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/cryptox"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/logging"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/repomanager"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/storage"
)

// DecryptedFile is the result of a completed download: plaintext bytes and
// the recovered filename. Callers own the memory and should not retain it.
type DecryptedFile struct {
	Name string
	Data []byte
}

// DownloadRequest carries everything one download needs. Either GrantToken
// or Code clears the gate: a non-empty GrantToken is redeemed (one download
// per grant), otherwise Code is verified directly. Secret is the per-file
// passcode; MasterSecret unlocks the filename envelope and may be empty, in
// which case the name is left blank.
type DownloadRequest struct {
	ShareID      string
	Channel      string
	Code         string
	GrantToken   string
	Secret       string
	MasterSecret string
}

// DownloadService orchestrates the pipeline: gate, fetch, derive, decrypt,
// then the atomic download-count/burn transition.
type DownloadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.CiphertextStore
	shares      *ShareService
	gate        *GateService
	logger      logging.Logger

	now func() time.Time
}

func NewDownloadService(db *sql.DB, m repomanager.RepositoryManager, store storage.CiphertextStore, shares *ShareService, gate *GateService, l logging.Logger) *DownloadService {
	return &DownloadService{
		db:          db,
		repomanager: m,
		store:       store,
		shares:      shares,
		gate:        gate,
		logger:      l.With("module", "download"),
		now:         time.Now,
	}
}

// Download runs the full pipeline for one request.
//
// Gate failures propagate unchanged and nothing is decrypted. A passing
// gate is followed by decryption with the derived file key; only a
// successful decrypt reaches the conditional download-count update, so a
// wrong passcode can never consume a burn-after-read share. Losing the
// conditional update to a concurrent download discards the plaintext and
// fails with ErrShareGone: exactly one of two racing downloads of a burn
// share succeeds.
func (s *DownloadService) Download(ctx context.Context, req DownloadRequest) (*DecryptedFile, error) {
	if req.GrantToken != "" {
		if err := s.gate.RedeemGrant(req.GrantToken, req.ShareID, req.Channel); err != nil {
			return nil, err
		}
	} else if _, err := s.gate.VerifyCode(ctx, req.ShareID, req.Channel, req.Code); err != nil {
		return nil, err
	}

	share, err := s.shares.GetAccessible(ctx, req.ShareID)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.store.Get(ctx, share.StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrShareGone
		}
		return nil, fmt.Errorf("fetching ciphertext: %w", err)
	}

	fileKey, _, err := cryptox.Derive(req.Secret, share.FileSalt)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(fileKey)

	plaintext, err := cryptox.Decrypt(ciphertext, fileKey, share.FileNonce)
	if err != nil {
		// the gate already passed; this is a key problem, not a code problem
		return nil, common.ErrWrongSecret
	}

	updated, err := s.repomanager.Shares(s.db).RegisterDownload(ctx, req.ShareID, s.now())
	if err != nil {
		common.WipeByteArray(plaintext)
		if errors.Is(err, common.ErrConditionFailed) {
			return nil, common.ErrShareGone
		}
		return nil, err
	}

	if updated.Status == models.ShareConsumed {
		// burn-after-read: the ciphertext goes with the record
		if err := s.store.Delete(ctx, share.StorageKey); err != nil {
			s.logger.Warn(ctx, "burned ciphertext delete failed", "share_id", share.ID)
		}
	}

	name, err := s.decryptName(share, req.MasterSecret)
	if err != nil {
		common.WipeByteArray(plaintext)
		return nil, err
	}

	s.logger.Info(ctx, "download completed", "share_id", share.ID, "count", updated.DownloadCount)
	return &DecryptedFile{Name: name, Data: plaintext}, nil
}

func (s *DownloadService) decryptName(share *models.Share, masterSecret string) (string, error) {
	if masterSecret == "" {
		return "", nil
	}

	masterKey, _, err := cryptox.Derive(masterSecret, share.NameSalt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(masterKey)

	name, err := cryptox.DecryptString(share.NameCiphertext, masterKey, share.NameNonce)
	if err != nil {
		return "", common.ErrWrongSecret
	}
	return name, nil
}
