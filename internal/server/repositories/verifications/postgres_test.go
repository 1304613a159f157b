package verifications

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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+verifications\s*\(id,\s*share_id,\s*channel,\s*code_hash,\s*issued_at,\s*expires_at,\s*attempts,\s*max_attempts\)`
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	v := &models.Verification{
		ID: "v1", ShareID: "share1", Channel: "sms:+155500",
		CodeHash: []byte("hash"), IssuedAt: issued, ExpiresAt: issued.Add(15 * time.Minute),
		Attempts: 0, MaxAttempts: 3,
	}
	mock.ExpectExec(q).
		WithArgs(v.ID, v.ShareID, v.Channel, v.CodeHash, v.IssuedAt, v.ExpiresAt, v.Attempts, v.MaxAttempts).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+verifications\b`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Verification{ID: "v1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetLatestActive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*FROM\s+verifications\s+WHERE\s+share_id\s*=\s*\$1\s+AND\s+channel\s*=\s*\$2\s+AND\s+consumed_at\s+IS\s+NULL\s+ORDER\s+BY\s+issued_at\s+DESC\s+LIMIT\s+1\s*$`
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "share_id", "channel", "code_hash", "issued_at", "expires_at",
		"attempts", "max_attempts", "consumed_at",
	}).AddRow("v1", "share1", "sms:+155500", []byte("hash"), issued, issued.Add(15*time.Minute), 1, 3, nil)

	mock.ExpectQuery(q).WithArgs("share1", "sms:+155500").WillReturnRows(rows)

	got, err := repo.GetLatestActive(context.Background(), "share1", "sms:+155500")
	if err != nil {
		t.Fatalf("GetLatestActive error: %v", err)
	}
	if got.ID != "v1" || got.Attempts != 1 || got.ConsumedAt != nil {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetLatestActive_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*SELECT\s+.*FROM\s+verifications\b`).
		WithArgs("share1", "sms:+155500").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetLatestActive(context.Background(), "share1", "sms:+155500")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountIssuedSince(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+COUNT\(\*\),\s*MIN\(issued_at\)\s+FROM\s+verifications`
	since := time.Date(2025, 6, 1, 11, 55, 0, 0, time.UTC)
	oldest := since.Add(time.Minute)

	rows := sqlmock.NewRows([]string{"count", "min"}).AddRow(2, oldest)
	mock.ExpectQuery(q).WithArgs("sms:+155500", since).WillReturnRows(rows)

	count, got, err := repo.CountIssuedSince(context.Background(), "sms:+155500", since)
	if err != nil {
		t.Fatalf("CountIssuedSince error: %v", err)
	}
	if count != 2 || !got.Equal(oldest) {
		t.Fatalf("unexpected result: count=%d oldest=%v", count, got)
	}
}

func TestCountIssuedSince_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// MIN over zero rows is NULL
	rows := sqlmock.NewRows([]string{"count", "min"}).AddRow(0, nil)
	mock.ExpectQuery(`(?s)^\s*SELECT\s+COUNT\(\*\),\s*MIN\(issued_at\)`).
		WithArgs("sms:+155500", sqlmock.AnyArg()).
		WillReturnRows(rows)

	count, oldest, err := repo.CountIssuedSince(context.Background(), "sms:+155500", time.Now())
	if err != nil {
		t.Fatalf("CountIssuedSince error: %v", err)
	}
	if count != 0 || !oldest.IsZero() {
		t.Fatalf("unexpected result: count=%d oldest=%v", count, oldest)
	}
}

func TestRegisterAttempt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+verifications\s+SET\s+attempts\s*=\s*attempts\s*\+\s*1\s+WHERE\s+id\s*=\s*\$1\s+AND\s+attempts\s*<\s*max_attempts\s+AND\s+consumed_at\s+IS\s+NULL\s+RETURNING\s+attempts\s*$`

	mock.ExpectQuery(q).WithArgs("v1").
		WillReturnRows(sqlmock.NewRows([]string{"attempts"}).AddRow(2))

	attempts, err := repo.RegisterAttempt(context.Background(), "v1")
	if err != nil {
		t.Fatalf("RegisterAttempt error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestRegisterAttempt_BudgetSpent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*UPDATE\s+verifications\s+SET\s+attempts`).
		WithArgs("v1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.RegisterAttempt(context.Background(), "v1")
	if !errors.Is(err, common.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
}

func TestConsume(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+verifications\s+SET\s+consumed_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+AND\s+consumed_at\s+IS\s+NULL\s*$`
	now := time.Now()

	mock.ExpectExec(q).WithArgs("v1", now).WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Consume(context.Background(), "v1", now); err != nil {
		t.Fatalf("Consume error: %v", err)
	}

	mock.ExpectExec(q).WithArgs("v1", now).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Consume(context.Background(), "v1", now)
	if !errors.Is(err, common.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
}

func TestInvalidateActive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+verifications\s+SET\s+expires_at\s*=\s*\$3\s+WHERE\s+share_id\s*=\s*\$1\s+AND\s+channel\s*=\s*\$2\s+AND\s+consumed_at\s+IS\s+NULL\s+AND\s+expires_at\s*>\s*\$3\s*$`
	now := time.Now()

	mock.ExpectExec(q).WithArgs("share1", "sms:+155500", now).WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.InvalidateActive(context.Background(), "share1", "sms:+155500", now)
	if err != nil {
		t.Fatalf("InvalidateActive error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 invalidated, got %d", n)
	}
}
