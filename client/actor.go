// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// identityTries bounds a single identity request; the poll loop retries
// after RetryDelay when all of them fail.
const identityTries = 3

// acquireID requests an identity from the server, retrying at a constant
// delay
func acquireID(ctx context.Context, c *Client, delay time.Duration, actor string) (int, error) {
	return backoff.Retry(ctx, func() (int, error) {
		id, err := c.UniqueID(ctx)
		if errors.Is(err, ErrUnexpectedStatus) {
			return 0, backoff.Permanent(err)
		}
		return id, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(delay)),
		backoff.WithMaxTries(identityTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.Warn("identity request failed", "actor", actor, "error", err, "retry_in", next)
		}),
	)
}

// run calls step every interval() until ctx is done. A failed step is
// logged and retried after retryDelay instead of the usual interval.
func run(ctx context.Context, actor string, step func(context.Context) error, interval func() time.Duration, retryDelay time.Duration) error {
	for {
		wait := interval()
		if err := step(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Warn("poll failed", "actor", actor, "error", err, "retry_in", retryDelay)
			wait = retryDelay
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}
