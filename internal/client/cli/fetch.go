package cli

import (
	"context"
	"fmt"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/client/client"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/filex"
)

// Fetch walks the recipient through the whole flow: pass the gate with a
// grant obtained earlier via `verify`, or request a one-time code and
// submit it, then write the recovered file into the download directory.
func (a *App) Fetch(ctx context.Context) error {

	ref, err := GetSimpleText(a.reader, "Share link or id", a.out)
	if err != nil {
		return err
	}
	id := resolveShareID(ref)

	channel, err := GetSimpleText(a.reader, "Delivery channel", a.out)
	if err != nil {
		return err
	}

	grant, err := GetSimpleText(a.reader, "Grant token (empty to request a code)", a.out)
	if err != nil {
		return err
	}

	var code string
	if grant == "" {
		cctx, cancel := a.callCtx(ctx)
		expiresAt, maxAttempts, err := a.api.IssueCode(cctx, id, channel)
		cancel()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Code sent, valid until %s, %d attempts allowed.\n", expiresAt.Format("15:04:05"), maxAttempts)

		code, err = GetSimpleText(a.reader, "One-time code", a.out)
		if err != nil {
			return err
		}
	}

	passcode, err := GetSecret("Passcode", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passcode)

	masterSecret, err := GetSecret("Master secret (empty to skip the name envelope)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(masterSecret)

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	name, data, err := a.api.Download(cctx, client.FetchRequest{
		ShareID:      id,
		Channel:      channel,
		Code:         code,
		GrantToken:   grant,
		Secret:       string(passcode),
		MasterSecret: string(masterSecret),
	})
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubDir(a.config.DownloadDir)
	if err != nil {
		return err
	}

	path, err := filex.WriteDownload(dir, name, id+".bin", data)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(data), path)
	return nil
}
