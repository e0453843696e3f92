package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned by [Open] and [NewRedisCache] when the Redis
// server never answers a ping.
var ErrUnavailable = errors.New("cache unavailable")

var (
	pingAttempts = 3
	pingBackoff  = 250 * time.Millisecond
)

// transient marks a failure that may clear up on its own, such as a refused
// connection while Redis is still starting.
type transient struct{ error }

func (t transient) Unwrap() error { return t.error }

func isTransient(err error) bool {
	var t transient
	return errors.As(err, &t)
}

// retry calls fn up to pingAttempts times and doubles the wait after each
// failure. Only failures wrapped in transient are retried.
func retry(ctx context.Context, fn func() error) error {
	wait := pingBackoff
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !isTransient(err) || attempt >= pingAttempts {
			return err
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait *= 2
	}
}
