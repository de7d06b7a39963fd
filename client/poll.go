package client

import (
	"context"
	"time"

	"github.com/nakamauwu/hanghub/types"
)

type PollOptions struct {
	// Interval between fetches. Zero uses DefaultPollInterval.
	Interval time.Duration
	// OnError receives failed fetches. Polling continues after it returns.
	OnError func(error)
}

// Poll fetches the room right away and then once per interval until ctx
// is done, calling onUpdate with every fetched room. Fetches never
// overlap. It returns ctx.Err().
func (c *Client) Poll(ctx context.Context, code string, opts PollOptions, onUpdate func(types.Room)) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		room, err := c.Room(ctx, code)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			if opts.OnError != nil {
				opts.OnError(err)
			}
		default:
			onUpdate(room)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
