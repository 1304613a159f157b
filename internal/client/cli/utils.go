package cli

import (
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/sharelink"
)

// resolveShareID accepts either a full share link or a bare share id.
// A parseable link wins; anything else is passed through untouched and
// left for the server to reject.
func resolveShareID(ref string) string {
	if id, _, err := sharelink.Parse(ref); err == nil {
		return id
	}
	return ref
}
