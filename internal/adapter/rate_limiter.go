package adapter

import (
	"context"

	"golang.org/x/time/rate"
)

// rateLimiter is a token bucket shared by every client derived through
// [FriendFeed.As]. A nil *rateLimiter never blocks.
type rateLimiter struct {
	limiter *rate.Limiter
}

// newRateLimiter returns nil for qps <= 0.
func newRateLimiter(qps float64) *rateLimiter {
	if qps <= 0 {
		return nil
	}
	burst := int(qps)
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), burst)}
}

// Wait blocks until a token is available or ctx is done.
func (r *rateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}
