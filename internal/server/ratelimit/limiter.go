// Package ratelimit throttles failed login attempts per account. The Redis
// implementation keeps a fixed-window failure counter per email; a nop
// implementation is used when no Redis address is configured.
package ratelimit

import "context"

// LoginLimiter tracks failed login attempts.
//
// Allow reports whether another attempt may proceed. Fail records a failed
// attempt. Reset clears the counter after a successful login. Backend
// failures are returned to the caller, which is expected to fail open:
// locking every user out because Redis is down is worse than briefly losing
// throttling.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// Nop permits every attempt. Used when rate limiting is disabled.
type Nop struct{}

func (Nop) Allow(context.Context, string) (bool, error) { return true, nil }
func (Nop) Fail(context.Context, string) error          { return nil }
func (Nop) Reset(context.Context, string) error         { return nil }
