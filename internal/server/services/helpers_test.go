package services

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/dbx"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/logging"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/config"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
	invitationsrepo "github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/invitations"
	sharesrepo "github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/shares"
	verificationsrepo "github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/verifications"
	"io"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

// --- in-memory share repository with real conditional-update semantics ---

type fakeShareRepo struct {
	mu     sync.Mutex
	shares map[string]*models.Share
}

func newFakeShareRepo() *fakeShareRepo {
	return &fakeShareRepo{shares: map[string]*models.Share{}}
}

func (f *fakeShareRepo) put(s *models.Share) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.shares[s.ID] = &cp
}

func (f *fakeShareRepo) Create(ctx context.Context, share *models.Share) (*models.Share, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *share
	cp.CreatedAt = time.Now()
	f.shares[share.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeShareRepo) Get(ctx context.Context, id string) (*models.Share, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shares[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShareRepo) RegisterDownload(ctx context.Context, id string, now time.Time) (*models.Share, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shares[id]
	if !ok {
		return nil, common.ErrConditionFailed
	}
	if s.Status != models.ShareActive {
		return nil, common.ErrConditionFailed
	}
	if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
		return nil, common.ErrConditionFailed
	}
	if s.BurnAfterRead && s.DownloadCount > 0 {
		return nil, common.ErrConditionFailed
	}
	s.DownloadCount++
	if s.BurnAfterRead {
		s.Status = models.ShareConsumed
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShareRepo) MarkExpired(ctx context.Context, id string, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shares[id]
	if !ok || s.Status != models.ShareActive || s.ExpiresAt == nil || s.ExpiresAt.After(now) {
		return false, nil
	}
	s.Status = models.ShareExpired
	return true, nil
}

func (f *fakeShareRepo) Revoke(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shares[id]
	if !ok {
		return common.ErrNotFound
	}
	switch s.Status {
	case models.ShareActive, models.ShareRevoked:
		s.Status = models.ShareRevoked
		return nil
	default:
		return common.ErrShareGone
	}
}

func (f *fakeShareRepo) SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.Share, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Share
	for _, s := range f.shares {
		if s.Status == models.ShareActive && s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
			cp := *s
			out = append(out, &cp)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// --- in-memory verification repository ---

type fakeVerificationRepo struct {
	mu      sync.Mutex
	records []*models.Verification
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{}
}

func (f *fakeVerificationRepo) Create(ctx context.Context, v *models.Verification) (*models.Verification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *v
	f.records = append(f.records, &cp)
	out := cp
	return &out, nil
}

func (f *fakeVerificationRepo) GetLatestActive(ctx context.Context, shareID, channel string) (*models.Verification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *models.Verification
	for _, r := range f.records {
		if r.ShareID != shareID || r.Channel != channel || r.ConsumedAt != nil {
			continue
		}
		if latest == nil || r.IssuedAt.After(latest.IssuedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, common.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (f *fakeVerificationRepo) CountIssuedSince(ctx context.Context, channel string, since time.Time) (int, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	var oldest time.Time
	for _, r := range f.records {
		if r.Channel == channel && !r.IssuedAt.Before(since) {
			count++
			if oldest.IsZero() || r.IssuedAt.Before(oldest) {
				oldest = r.IssuedAt
			}
		}
	}
	return count, oldest, nil
}

func (f *fakeVerificationRepo) RegisterAttempt(ctx context.Context, id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID != id {
			continue
		}
		if r.ConsumedAt != nil || r.Attempts >= r.MaxAttempts {
			return 0, common.ErrConditionFailed
		}
		r.Attempts++
		return r.Attempts, nil
	}
	return 0, common.ErrConditionFailed
}

func (f *fakeVerificationRepo) Consume(ctx context.Context, id string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID != id {
			continue
		}
		if r.ConsumedAt != nil {
			return common.ErrConditionFailed
		}
		t := now
		r.ConsumedAt = &t
		return nil
	}
	return common.ErrConditionFailed
}

func (f *fakeVerificationRepo) InvalidateActive(ctx context.Context, shareID, channel string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.records {
		if r.ShareID == shareID && r.Channel == channel && r.ConsumedAt == nil && r.ExpiresAt.After(now) {
			r.ExpiresAt = now
			n++
		}
	}
	return n, nil
}

// --- in-memory invitation repository ---

type fakeInvitationRepo struct {
	mu   sync.Mutex
	invs map[string]*models.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invs: map[string]*models.Invitation{}}
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *models.Invitation) (*models.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *inv
	cp.CreatedAt = time.Now()
	f.invs[inv.Token] = &cp
	out := cp
	return &out, nil
}

func (f *fakeInvitationRepo) Get(ctx context.Context, token string) (*models.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invs[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvitationRepo) UpdateStatus(ctx context.Context, token string, from, to models.InvitationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invs[token]
	if !ok || inv.Status != from {
		return common.ErrConditionFailed
	}
	inv.Status = to
	return nil
}

// --- repo manager over the fakes ---

type fakeRepoManager struct {
	s *fakeShareRepo
	v *fakeVerificationRepo
	i *fakeInvitationRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		s: newFakeShareRepo(),
		v: newFakeVerificationRepo(),
		i: newFakeInvitationRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Shares(db dbx.DBTX) sharesrepo.Repository     { return m.s }
func (m *fakeRepoManager) Verifications(db dbx.DBTX) verificationsrepo.Repository {
	return m.v
}
func (m *fakeRepoManager) Invitations(db dbx.DBTX) invitationsrepo.Repository { return m.i }

// --- in-memory ciphertext store ---

type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (s *memStore) Put(ctx context.Context, locator string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[locator] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Get(ctx context.Context, locator string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[locator]
	if !ok {
		return nil, common.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *memStore) Delete(ctx context.Context, locator string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, locator)
	return nil
}

func (s *memStore) has(locator string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[locator]
	return ok
}

// --- delivery fake ---

type fakeSender struct {
	mu       sync.Mutex
	messages []string
	channels []string
	err      error
}

func (f *fakeSender) Send(ctx context.Context, channel, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.channels = append(f.channels, channel)
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeSender) lastMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}
