// Package sharelink builds and parses share links. The link path carries
// only the opaque share id; the key-derivation salt travels in the URL
// fragment, which browsers never send to a server. Servers must not log
// full links for the same reason.
package sharelink

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/cryptox"
)

var ErrMalformedLink = errors.New("malformed share link")

// Build assembles "<base>/s/<id>#<base64url salt>". The salt must be a
// key-derivation salt of cryptox.SaltSize bytes.
func Build(baseURL, shareID string, salt []byte) (string, error) {
	if shareID == "" {
		return "", ErrMalformedLink
	}
	if len(salt) != cryptox.SaltSize {
		return "", fmt.Errorf("%w: bad salt length %d", ErrMalformedLink, len(salt))
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/s/" + url.PathEscape(shareID)
	u.Fragment = base64.RawURLEncoding.EncodeToString(salt)
	return u.String(), nil
}

// Parse extracts the share id and salt from a link produced by Build.
func Parse(link string) (shareID string, salt []byte, err error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}

	i := strings.LastIndex(u.Path, "/s/")
	if i < 0 {
		return "", nil, ErrMalformedLink
	}
	shareID, err = url.PathUnescape(u.Path[i+len("/s/"):])
	if err != nil || shareID == "" || strings.Contains(shareID, "/") {
		return "", nil, ErrMalformedLink
	}

	salt, err = base64.RawURLEncoding.DecodeString(u.Fragment)
	if err != nil || len(salt) != cryptox.SaltSize {
		return "", nil, ErrMalformedLink
	}

	return shareID, salt, nil
}
