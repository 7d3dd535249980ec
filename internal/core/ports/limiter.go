package ports

import "context"

// RateLimiter is the admission check applied to throttled operations.
// Allow consumes one slot for key and reports whether the call may proceed
// within the current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
