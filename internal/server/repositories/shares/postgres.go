package shares

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

// PostgresRepository implements share storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, share *models.Share) (*models.Share, error) {
	query := `
		INSERT INTO shares (id, owner_ref, storage_key, file_size, name_ciphertext, name_nonce, name_salt,
			file_salt, file_nonce, burn_after_read, expires_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		share.ID, share.OwnerRef, share.StorageKey, share.FileSize,
		share.NameCiphertext, share.NameNonce, share.NameSalt, share.FileSalt, share.FileNonce,
		share.BurnAfterRead, share.ExpiresAt, models.ShareActive).Scan(&share.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	share.Status = models.ShareActive
	return share, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Share, error) {
	query := `
		SELECT id, owner_ref, storage_key, file_size, name_ciphertext, name_nonce, name_salt,
			file_salt, file_nonce, burn_after_read, expires_at, download_count, status, created_at
		FROM shares
		WHERE id = $1
	`
	share := &models.Share{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&share.ID, &share.OwnerRef, &share.StorageKey, &share.FileSize,
		&share.NameCiphertext, &share.NameNonce, &share.NameSalt, &share.FileSalt, &share.FileNonce,
		&share.BurnAfterRead, &share.ExpiresAt, &share.DownloadCount, &share.Status, &share.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return share, nil
}

// RegisterDownload is the burn-after-read critical section: one conditional
// UPDATE both counts the download and consumes the share, so two concurrent
// downloads can never both succeed against a burn share.
func (r *PostgresRepository) RegisterDownload(ctx context.Context, id string, now time.Time) (*models.Share, error) {
	query := `
		UPDATE shares
		SET download_count = download_count + 1,
			status = CASE WHEN burn_after_read THEN 'consumed' ELSE status END
		WHERE id = $1
			AND status = 'active'
			AND (expires_at IS NULL OR expires_at > $2)
			AND (NOT burn_after_read OR download_count = 0)
		RETURNING download_count, status, storage_key, burn_after_read
	`
	share := &models.Share{ID: id}
	err := r.db.QueryRowContext(ctx, query, id, now).Scan(
		&share.DownloadCount, &share.Status, &share.StorageKey, &share.BurnAfterRead)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrConditionFailed
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return share, nil
}

func (r *PostgresRepository) MarkExpired(ctx context.Context, id string, now time.Time) (bool, error) {
	query := `
		UPDATE shares SET status = 'expired'
		WHERE id = $1 AND status = 'active' AND expires_at IS NOT NULL AND expires_at <= $2
	`
	result, err := r.db.ExecContext(ctx, query, id, now)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, id string) error {
	query := `
		UPDATE shares SET status = 'revoked'
		WHERE id = $1 AND status IN ('active', 'revoked')
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 1 {
		return nil
	}

	// distinguish unknown ids from shares already terminal another way
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return common.ErrShareGone
}

func (r *PostgresRepository) SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.Share, error) {
	query := `
		SELECT id, storage_key
		FROM shares
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at <= $1
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select expired shares: %w", err)
	}
	defer rows.Close()

	var result []*models.Share
	for rows.Next() {
		var item models.Share
		if err := rows.Scan(&item.ID, &item.StorageKey); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
