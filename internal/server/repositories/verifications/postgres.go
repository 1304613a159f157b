package verifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/dbx"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
)

// PostgresRepository implements verification storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.Verification) (*models.Verification, error) {
	query := `
		INSERT INTO verifications (id, share_id, channel, code_hash, issued_at, expires_at, attempts, max_attempts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.ShareID, v.Channel, v.CodeHash, v.IssuedAt, v.ExpiresAt, v.Attempts, v.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) GetLatestActive(ctx context.Context, shareID, channel string) (*models.Verification, error) {
	query := `
		SELECT id, share_id, channel, code_hash, issued_at, expires_at, attempts, max_attempts, consumed_at
		FROM verifications
		WHERE share_id = $1 AND channel = $2 AND consumed_at IS NULL
		ORDER BY issued_at DESC
		LIMIT 1
	`
	v := &models.Verification{}
	err := r.db.QueryRowContext(ctx, query, shareID, channel).Scan(
		&v.ID, &v.ShareID, &v.Channel, &v.CodeHash, &v.IssuedAt, &v.ExpiresAt,
		&v.Attempts, &v.MaxAttempts, &v.ConsumedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) CountIssuedSince(ctx context.Context, channel string, since time.Time) (int, time.Time, error) {
	query := `
		SELECT COUNT(*), MIN(issued_at)
		FROM verifications
		WHERE channel = $1 AND issued_at >= $2
	`
	var count int
	var oldest sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, channel, since).Scan(&count, &oldest); err != nil {
		return 0, time.Time{}, fmt.Errorf("db error: %w", err)
	}
	if !oldest.Valid {
		return count, time.Time{}, nil
	}
	return count, oldest.Time, nil
}

// RegisterAttempt counts the attempt before the comparison outcome exists,
// so a crash or a concurrent duplicate cannot buy extra guesses.
func (r *PostgresRepository) RegisterAttempt(ctx context.Context, id string) (int, error) {
	query := `
		UPDATE verifications SET attempts = attempts + 1
		WHERE id = $1 AND attempts < max_attempts AND consumed_at IS NULL
		RETURNING attempts
	`
	var attempts int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&attempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrConditionFailed
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return attempts, nil
}

func (r *PostgresRepository) Consume(ctx context.Context, id string, now time.Time) error {
	query := `
		UPDATE verifications SET consumed_at = $2
		WHERE id = $1 AND consumed_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, id, now)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrConditionFailed
	}
	return nil
}

func (r *PostgresRepository) InvalidateActive(ctx context.Context, shareID, channel string, now time.Time) (int64, error) {
	query := `
		UPDATE verifications SET expires_at = $3
		WHERE share_id = $1 AND channel = $2 AND consumed_at IS NULL AND expires_at > $3
	`
	result, err := r.db.ExecContext(ctx, query, shareID, channel, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
