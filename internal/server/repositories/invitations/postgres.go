package invitations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/dbx"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, inv *models.Invitation) (*models.Invitation, error) {
	query := `
		INSERT INTO invitations (token, share_id, recipient_channel, expires_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		inv.Token, inv.ShareID, inv.RecipientChannel, inv.ExpiresAt, inv.Status).Scan(&inv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return inv, nil
}

func (r *PostgresRepository) Get(ctx context.Context, token string) (*models.Invitation, error) {
	query := `
		SELECT token, share_id, recipient_channel, expires_at, status, created_at
		FROM invitations
		WHERE token = $1
	`
	inv := &models.Invitation{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&inv.Token, &inv.ShareID, &inv.RecipientChannel, &inv.ExpiresAt, &inv.Status, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return inv, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, token string, from, to models.InvitationStatus) error {
	query := `
		UPDATE invitations SET status = $3
		WHERE token = $1 AND status = $2
	`
	result, err := r.db.ExecContext(ctx, query, token, from, to)
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
