// Package services contains server-side business logic: the verification
// gate, the download pipeline and share lifecycle management. Durable state
// lives in the repositories; the gate additionally holds short-lived
// in-process state for code redelivery and grant redemption.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/cryptox"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/dbx"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/logging"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/auth"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/config"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/notify"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CodeDigits is the length of issued one-time codes.
const CodeDigits = 6

// Grant proves a verification challenge was satisfied. The token it carries
// admits exactly one download and is never persisted.
type Grant struct {
	Token   string
	ShareID string
	Channel string
}

// pendingCode keeps the plaintext of the latest issued code so delivery can
// be retried without regenerating it. Only the hash reaches the database.
type pendingCode struct {
	code      string
	expiresAt time.Time
}

// GateService is the one-time-code state machine guarding downloads.
type GateService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sender      notify.ChannelSender
	logger      logging.Logger

	jwtSecret     []byte
	codeValidity  time.Duration
	maxAttempts   int
	rateWindow    time.Duration
	rateMax       int
	grantValidity time.Duration

	mu       sync.Mutex
	pending  map[string]pendingCode // latest plaintext code per (share, channel)
	redeemed map[string]time.Time   // used grant jti -> grant expiry

	now func() time.Time
}

// NewGateService constructs a GateService using repositories, the delivery
// collaborator and server config.
func NewGateService(db *sql.DB, m repomanager.RepositoryManager, sender notify.ChannelSender, l logging.Logger, cfg *config.Config) *GateService {
	return &GateService{
		db:            db,
		repomanager:   m,
		sender:        sender,
		logger:        l.With("module", "gate"),
		jwtSecret:     []byte(cfg.SecretKey),
		codeValidity:  cfg.CodeValidityDuration,
		maxAttempts:   cfg.MaxAttempts,
		rateWindow:    cfg.RateLimitWindow,
		rateMax:       cfg.RateLimitMax,
		grantValidity: cfg.GrantValidityDuration,
		pending:       make(map[string]pendingCode),
		redeemed:      make(map[string]time.Time),
		now:           time.Now,
	}
}

func gateKey(shareID, channel string) string {
	return shareID + "\x00" + channel
}

func (s *GateService) rememberCode(shareID, channel, code string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, p := range s.pending {
		if now.After(p.expiresAt) {
			delete(s.pending, k)
		}
	}
	s.pending[gateKey(shareID, channel)] = pendingCode{code: code, expiresAt: expiresAt}
}

// recallCode returns the cached plaintext only when it still hashes to the
// persisted record, so a stale entry left over from a reissued code or a
// restarted process can never be re-delivered.
func (s *GateService) recallCode(shareID, channel string, codeHash []byte, now time.Time) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[gateKey(shareID, channel)]
	if !ok || now.After(p.expiresAt) {
		return "", false
	}
	if subtle.ConstantTimeCompare(cryptox.HashCode(p.code), codeHash) != 1 {
		return "", false
	}
	return p.code, true
}

// IssueCode generates a one-time code for (shareID, channel), persists its
// hash and pushes the code over the recipient channel.
//
// Issuance is rate limited per channel over a trailing window. Reissuing
// invalidates earlier still-valid codes for the same pair, so at most one
// code is checkable at a time.
//
// A delivery failure does not roll back the record: the verification is
// returned together with a common.ErrDelivery, and ResendCode can retry
// delivery without regenerating the code.
func (s *GateService) IssueCode(ctx context.Context, shareID, channel string) (*models.Verification, error) {
	now := s.now()

	shareRepo := s.repomanager.Shares(s.db)
	share, err := shareRepo.Get(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if !share.Accessible(now) {
		return nil, common.ErrShareGone
	}

	verRepo := s.repomanager.Verifications(s.db)
	count, oldest, err := verRepo.CountIssuedSince(ctx, channel, now.Add(-s.rateWindow))
	if err != nil {
		return nil, fmt.Errorf("rate limit check: %w", err)
	}
	if count >= s.rateMax {
		return nil, &common.RateLimitError{RetryAfter: oldest.Add(s.rateWindow).Sub(now)}
	}

	code, err := common.MakeNumericCode(CodeDigits)
	if err != nil {
		return nil, common.ErrInternal
	}

	record := &models.Verification{
		ID:          uuid.NewString(),
		ShareID:     shareID,
		Channel:     channel,
		CodeHash:    cryptox.HashCode(code),
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.codeValidity),
		Attempts:    0,
		MaxAttempts: s.maxAttempts,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Verifications(tx)
		if _, err := repoTx.InvalidateActive(ctx, shareID, channel, now); err != nil {
			return fmt.Errorf("invalidating prior codes: %w", err)
		}
		_, err := repoTx.Create(ctx, record)
		return err
	}); err != nil {
		return nil, err
	}

	s.rememberCode(shareID, channel, code, record.ExpiresAt)
	s.logger.Info(ctx, "code issued", "share_id", shareID)

	if err := s.sender.Send(ctx, channel, "Your access code is "+code); err != nil {
		s.logger.Warn(ctx, "code delivery failed", "share_id", shareID)
		if errors.Is(err, common.ErrDelivery) {
			return record, err
		}
		return record, fmt.Errorf("%w: %w", common.ErrDelivery, err)
	}

	return record, nil
}

// VerifyCode checks a submitted code against the latest unconsumed record
// for (shareID, channel).
//
// The attempt counter is incremented through a conditional update before
// the comparison result exists, so crashes or concurrent duplicates can
// never buy extra guesses. On a match the record is consumed exactly once
// and a short-lived Grant is returned; on a mismatch the returned
// *common.WrongCodeError carries the remaining budget.
func (s *GateService) VerifyCode(ctx context.Context, shareID, channel, submitted string) (*Grant, error) {
	now := s.now()
	verRepo := s.repomanager.Verifications(s.db)

	record, err := verRepo.GetLatestActive(ctx, shareID, channel)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNoActiveChallenge
		}
		return nil, err
	}

	// expiry does not consume an attempt
	if now.After(record.ExpiresAt) {
		return nil, common.ErrChallengeExpired
	}
	if record.Attempts >= record.MaxAttempts {
		return nil, common.ErrAttemptsExhausted
	}

	attempts, err := verRepo.RegisterAttempt(ctx, record.ID)
	if err != nil {
		if errors.Is(err, common.ErrConditionFailed) {
			return nil, common.ErrAttemptsExhausted
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare(cryptox.HashCode(submitted), record.CodeHash) != 1 {
		s.logger.Info(ctx, "code rejected", "share_id", shareID, "attempts", attempts)
		return nil, &common.WrongCodeError{RemainingAttempts: record.MaxAttempts - attempts}
	}

	if err := verRepo.Consume(ctx, record.ID, now); err != nil {
		if errors.Is(err, common.ErrConditionFailed) {
			// lost the race to a concurrent correct submission
			return nil, common.ErrNoActiveChallenge
		}
		return nil, err
	}

	token, err := auth.GenerateGrant(shareID, channel, s.jwtSecret, s.grantValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "code verified", "share_id", shareID)
	return &Grant{Token: token, ShareID: shareID, Channel: channel}, nil
}

// ResendCode re-delivers the latest still-valid code for (shareID, channel)
// without generating a new one and without spending the issuance rate
// budget. Only the code hash survives a process restart, so redelivery is
// possible only while the issuing process holds the plaintext; otherwise
// the caller has to request a fresh code.
func (s *GateService) ResendCode(ctx context.Context, shareID, channel string) error {
	now := s.now()

	record, err := s.repomanager.Verifications(s.db).GetLatestActive(ctx, shareID, channel)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNoActiveChallenge
		}
		return err
	}
	if now.After(record.ExpiresAt) {
		return common.ErrChallengeExpired
	}

	code, ok := s.recallCode(shareID, channel, record.CodeHash, now)
	if !ok {
		return common.ErrNoActiveChallenge
	}

	if err := s.sender.Send(ctx, channel, "Your access code is "+code); err != nil {
		s.logger.Warn(ctx, "code redelivery failed", "share_id", shareID)
		if errors.Is(err, common.ErrDelivery) {
			return err
		}
		return fmt.Errorf("%w: %w", common.ErrDelivery, err)
	}

	s.logger.Info(ctx, "code resent", "share_id", shareID)
	return nil
}

// RedeemGrant validates a grant token, checks its binding to the share and
// channel, and marks it used. Each grant admits exactly one redemption.
func (s *GateService) RedeemGrant(token, shareID, channel string) error {
	claims, err := auth.ParseGrant(token, s.jwtSecret)
	if err != nil {
		return err
	}
	if claims.ShareID != shareID || claims.Channel != channel {
		return common.ErrInvalidGrant
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for jti, exp := range s.redeemed {
		if now.After(exp) {
			delete(s.redeemed, jti)
		}
	}
	if _, used := s.redeemed[claims.ID]; used {
		return common.ErrInvalidGrant
	}
	s.redeemed[claims.ID] = claims.ExpiresAt.Time
	return nil
}
