package cli

import (
	"context"
	"fmt"
	"time"
)

// RequestCode asks the server to deliver a fresh one-time code over the
// given channel. The code itself arrives out of band and is never shown
// here.
func (a *App) RequestCode(ctx context.Context) error {

	ref, err := GetSimpleText(a.reader, "Share link or id", a.out)
	if err != nil {
		return err
	}

	channel, err := GetSimpleText(a.reader, "Delivery channel", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	expiresAt, maxAttempts, err := a.api.IssueCode(cctx, resolveShareID(ref), channel)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Code sent, valid until %s, %d attempts allowed.\n", expiresAt.Format(time.RFC3339), maxAttempts)
	return nil
}

// Resend asks the server to push the already-issued code again. Unlike
// RequestCode this does not spend the rate budget or invalidate anything.
func (a *App) Resend(ctx context.Context) error {

	ref, err := GetSimpleText(a.reader, "Share link or id", a.out)
	if err != nil {
		return err
	}

	channel, err := GetSimpleText(a.reader, "Delivery channel", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.api.ResendCode(cctx, resolveShareID(ref), channel); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Code resent.")
	return nil
}

// Verify submits a received one-time code and prints the resulting grant
// token. The grant admits exactly one download through `fetch`.
func (a *App) Verify(ctx context.Context) error {

	ref, err := GetSimpleText(a.reader, "Share link or id", a.out)
	if err != nil {
		return err
	}

	channel, err := GetSimpleText(a.reader, "Delivery channel", a.out)
	if err != nil {
		return err
	}

	code, err := GetSimpleText(a.reader, "One-time code", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	grant, err := a.api.VerifyCode(cctx, resolveShareID(ref), channel, code)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Grant token: %s\n", grant)
	return nil
}
