package repomanager

import (
	"context"
	"database/sql"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/dbx"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/invitations"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/shares"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/verifications"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Shares(db dbx.DBTX) shares.Repository
	Verifications(db dbx.DBTX) verifications.Repository
	Invitations(db dbx.DBTX) invitations.Repository
}
