package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("share not found")
	ErrShareGone    = errors.New("share no longer available")
	ErrThrottled    = errors.New("too many codes requested")
)
