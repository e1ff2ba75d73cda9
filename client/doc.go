// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client talks to the classroom API and hosts the simulated actors.

Client wraps each endpoint in a typed method. Non-2xx answers come back as
errors wrapping ErrUnexpectedStatus.

Teacher and Door are polling loops built on a Client:

	c := client.New("http://127.0.0.1:5000", nil)
	err := client.NewTeacher(c, cfg).Run(ctx)

Both request an identity first (retried at a constant delay), then poll
until ctx is cancelled. A failed poll is logged and retried after
RetryDelay.
*/
package client
