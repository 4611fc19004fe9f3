// Package retry provides the bounded retry policy shared by every external
// HTTP call the bot makes.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy retries an operation up to MaxAttempts times, sleeping Delay between
// attempts. A zero Delay retries immediately.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Do runs fn until it succeeds or the attempts are exhausted. The last error
// is returned. The context is checked between attempts; external services are
// assumed idempotent per request, so a retry after a partial failure is
// acceptable.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry aborted: %w", ctx.Err())
			case <-time.After(p.Delay):
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
