// Package notify defines the out-of-band delivery collaborator used to push
// one-time codes to a recipient channel (SMS gateway, mail relay, ...).
// Implementations live outside the core; the gate only sees this interface.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/common"
	"github.com/sethvargo/go-retry"
)

// ChannelSender delivers a message to a channel address such as
// "sms:+155500" or "email:bob@example.com".
type ChannelSender interface {
	Send(ctx context.Context, channel, message string) error
}

// RetryingSender wraps a ChannelSender with bounded exponential backoff.
// A still-failing send surfaces as common.ErrDelivery; the caller keeps the
// verification record and may retry delivery without regenerating the code.
type RetryingSender struct {
	inner      ChannelSender
	maxRetries uint64
	base       time.Duration
}

func NewRetryingSender(inner ChannelSender, maxRetries uint64, base time.Duration) *RetryingSender {
	if base <= 0 {
		base = 200 * time.Millisecond
	}
	return &RetryingSender{inner: inner, maxRetries: maxRetries, base: base}
}

func (s *RetryingSender) Send(ctx context.Context, channel, message string) error {
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.base))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.inner.Send(ctx, channel, message); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrDelivery, err)
	}
	return nil
}
