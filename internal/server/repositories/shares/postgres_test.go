package shares

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleShare() *models.Share {
	return &models.Share{
		ID:             "share1",
		OwnerRef:       "owner1",
		StorageKey:     "shares/2025/06/01/blob1",
		FileSize:       64,
		NameCiphertext: []byte("name-ct"),
		NameNonce:      []byte("name-nonce"),
		NameSalt:       []byte("name-salt"),
		FileSalt:       []byte("file-salt"),
		FileNonce:      []byte("file-nonce"),
		BurnAfterRead:  true,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+shares\s*\(id,.*RETURNING\s+created_at\s*$`
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s := sampleShare()
	mock.ExpectQuery(q).
		WithArgs(s.ID, s.OwnerRef, s.StorageKey, s.FileSize,
			s.NameCiphertext, s.NameNonce, s.NameSalt, s.FileSalt, s.FileNonce,
			s.BurnAfterRead, nil, models.ShareActive).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), s)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Status != models.ShareActive || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected share: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+shares\b`
	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), sampleShare())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGet_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*owner_ref,.*FROM\s+shares\s+WHERE\s+id\s*=\s*\$1\s*$`
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expires := created.Add(time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "owner_ref", "storage_key", "file_size", "name_ciphertext", "name_nonce",
		"name_salt", "file_salt", "file_nonce", "burn_after_read", "expires_at",
		"download_count", "status", "created_at",
	}).AddRow("share1", "owner1", "k1", int64(64), []byte("ct"), []byte("nn"),
		[]byte("ns"), []byte("fs"), []byte("fn"), false, expires, 0, "active", created)

	mock.ExpectQuery(q).WithArgs("share1").WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "share1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != "share1" || got.Status != models.ShareActive || got.ExpiresAt == nil || !got.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected share: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,\s*owner_ref,`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegisterDownload_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+shares\s+SET\s+download_count\s*=\s*download_count\s*\+\s*1.*RETURNING\s+download_count,\s*status,\s*storage_key,\s*burn_after_read\s*$`
	now := time.Now()

	rows := sqlmock.NewRows([]string{"download_count", "status", "storage_key", "burn_after_read"}).
		AddRow(1, "consumed", "k1", true)
	mock.ExpectQuery(q).WithArgs("share1", now).WillReturnRows(rows)

	got, err := repo.RegisterDownload(context.Background(), "share1", now)
	if err != nil {
		t.Fatalf("RegisterDownload error: %v", err)
	}
	if got.DownloadCount != 1 || got.Status != models.ShareConsumed || !got.BurnAfterRead {
		t.Fatalf("unexpected share: %+v", got)
	}
}

func TestRegisterDownload_ConditionFailed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*UPDATE\s+shares\s+SET\s+download_count`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.RegisterDownload(context.Background(), "share1", time.Now())
	if !errors.Is(err, common.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
}

func TestMarkExpired(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+shares\s+SET\s+status\s*=\s*'expired'`
	now := time.Now()

	mock.ExpectExec(q).WithArgs("share1", now).WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.MarkExpired(context.Background(), "share1", now)
	if err != nil || !ok {
		t.Fatalf("expected transition, got ok=%v err=%v", ok, err)
	}

	mock.ExpectExec(q).WithArgs("share1", now).WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = repo.MarkExpired(context.Background(), "share1", now)
	if err != nil || ok {
		t.Fatalf("expected no transition, got ok=%v err=%v", ok, err)
	}
}

func TestRevoke_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+shares\s+SET\s+status\s*=\s*'revoked'`
	mock.ExpectExec(q).WithArgs("share1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Revoke(context.Background(), "share1"); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
}

func TestRevoke_TerminalShare(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+shares\s+SET\s+status\s*=\s*'revoked'`).
		WithArgs("share1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	created := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "owner_ref", "storage_key", "file_size", "name_ciphertext", "name_nonce",
		"name_salt", "file_salt", "file_nonce", "burn_after_read", "expires_at",
		"download_count", "status", "created_at",
	}).AddRow("share1", "owner1", "k1", int64(64), nil, nil, nil, []byte("fs"), []byte("fn"),
		true, nil, 1, "consumed", created)
	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,\s*owner_ref,`).WithArgs("share1").WillReturnRows(rows)

	err := repo.Revoke(context.Background(), "share1")
	if !errors.Is(err, common.ErrShareGone) {
		t.Fatalf("expected ErrShareGone, got %v", err)
	}
}

func TestRevoke_Unknown(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+shares\s+SET\s+status\s*=\s*'revoked'`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,\s*owner_ref,`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	err := repo.Revoke(context.Background(), "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSelectExpired(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*storage_key\s+FROM\s+shares\s+WHERE\s+status\s*=\s*'active'`
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "storage_key"}).
		AddRow("share1", "k1").
		AddRow("share2", "k2")
	mock.ExpectQuery(q).WithArgs(now, 10).WillReturnRows(rows)

	got, err := repo.SelectExpired(context.Background(), now, 10)
	if err != nil {
		t.Fatalf("SelectExpired error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "share1" || got[1].StorageKey != "k2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
