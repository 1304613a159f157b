package cli

import (
	"context"
	"fmt"
	"time"
)

// Invite binds a delivery channel to a share and prints the invitation
// token to pass along out of band.
func (a *App) Invite(ctx context.Context) error {

	ref, err := GetSimpleText(a.reader, "Share link or id", a.out)
	if err != nil {
		return err
	}

	channel, err := GetSimpleText(a.reader, "Delivery channel for the recipient (e.g. sms:+15551234567)", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	token, expiresAt, err := a.api.CreateInvitation(cctx, resolveShareID(ref), channel)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Invitation token: %s (valid until %s)\n", token, expiresAt.Format(time.RFC3339))
	return nil
}

// Accept redeems an invitation token and prints the share id and channel
// the recipient should use when fetching.
func (a *App) Accept(ctx context.Context) error {

	token, err := GetSimpleText(a.reader, "Invitation token", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	shareID, channel, err := a.api.AcceptInvitation(cctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Invitation accepted: share %s, channel %s\n", shareID, channel)
	return nil
}
