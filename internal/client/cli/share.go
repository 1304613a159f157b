package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/client/client"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/cryptox"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/netx"
)

// inlineUploadLimit is the largest ciphertext sent inline over gRPC.
// Bigger blobs are staged in object storage through a presigned PUT.
const inlineUploadLimit = 1 << 20

// Share seals a local file under a passcode and registers it with the
// server. The plaintext, the passcode and the derived key never leave this
// process; the server receives ciphertext and envelope metadata only.
func (a *App) Share(ctx context.Context) error {

	path, err := GetSimpleText(a.reader, "Path of the file to share", a.out)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	passcode, err := GetSecret("Passcode for the recipient", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passcode)
	if len(passcode) == 0 {
		return fmt.Errorf("passcode must not be empty")
	}

	masterSecret, err := GetSecret("Master secret for the name envelope (empty to skip)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(masterSecret)

	burnAnswer, err := GetSimpleText(a.reader, "Burn after first download? (y/N)", a.out)
	if err != nil {
		return err
	}

	ttlText, err := GetSimpleText(a.reader, "Expires in hours (empty for no deadline)", a.out)
	if err != nil {
		return err
	}

	env, err := cryptox.Seal(data, string(passcode))
	if err != nil {
		return err
	}

	sealed := client.SealedShare{
		FileSalt:      env.Salt,
		FileNonce:     env.Nonce,
		BurnAfterRead: strings.EqualFold(burnAnswer, "y") || strings.EqualFold(burnAnswer, "yes"),
	}

	if len(masterSecret) > 0 {
		key, nameSalt, err := cryptox.Derive(string(masterSecret), nil)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(key)

		nameCiphertext, nameNonce, err := cryptox.EncryptString(filepath.Base(path), key)
		if err != nil {
			return err
		}
		sealed.NameCiphertext = nameCiphertext
		sealed.NameNonce = nameNonce
		sealed.NameSalt = nameSalt
	}

	if ttlText != "" {
		hours, err := strconv.Atoi(ttlText)
		if err != nil || hours <= 0 {
			return fmt.Errorf("invalid expiry %q", ttlText)
		}
		deadline := time.Now().Add(time.Duration(hours) * time.Hour)
		sealed.ExpiresAt = &deadline
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	if len(env.Ciphertext) > inlineUploadLimit {
		key, url, err := a.api.PresignUpload(cctx)
		if err != nil {
			return err
		}
		if err := netx.UploadToPresignedURL(cctx, url, env.Ciphertext); err != nil {
			return err
		}
		sealed.StorageKey = key
		sealed.FileSize = int64(len(env.Ciphertext))
	} else {
		sealed.Ciphertext = env.Ciphertext
	}

	id, link, err := a.api.CreateShare(cctx, sealed)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Share %s created.\nLink (hand it to the recipient only): %s\n", id, link)
	return nil
}
