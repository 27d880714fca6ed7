package awsutil

import (
	"context"
	"errors"
	"time"
)

var ErrWaitTimeout = errors.New("timed out waiting for a terminal state")

// Waiter polls until a terminal state's been reached, sleeping Interval
// between polls. The AWS control plane is eventually consistent almost
// everywhere so every long-running operation in this program waits through
// one of these rather than through bespoke sleep loops.
type Waiter struct {
	Interval    time.Duration
	MaxAttempts int // 0 means no ceiling
}

// Wait calls poll until it returns (true, nil), an error, or the attempt
// ceiling's been reached, in which case it returns ErrWaitTimeout. Polls
// happen immediately and then every Interval to be fast on the happy path.
func (w Waiter) Wait(ctx context.Context, poll func(context.Context) (bool, error)) error {
	for attempt := 0; w.MaxAttempts == 0 || attempt < w.MaxAttempts; attempt++ {
		done, err := poll(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.Interval):
		}
	}
	return ErrWaitTimeout
}
