package cli

import (
	"context"
	"fmt"
)

// Revoke takes a share link or id and puts the share out of reach. The
// server deletes the ciphertext; revocation of an already terminal share
// reports an error from the server.
func (a *App) Revoke(ctx context.Context) error {

	ref, err := GetSimpleText(a.reader, "Share link or id", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	id := resolveShareID(ref)
	if err := a.api.RevokeShare(cctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Share %s revoked.\n", id)
	return nil
}
