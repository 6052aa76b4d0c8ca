// Package resilience retries file-system operations that fail for a short
// while, such as a rename blocked by a file another program still holds open.
package resilience

import (
	"context"
	"errors"
	"io/fs"
	"syscall"
	"time"
)

// Policy defines how an operation is retried.
type Policy struct {
	// Attempts is the total number of calls, the first one included.
	// Values below 1 mean a single call.
	Attempts int

	// BaseDelay is the wait before the second call; it doubles per attempt.
	BaseDelay time.Duration

	// MaxDelay caps the wait between calls.
	MaxDelay time.Duration

	// Retryable reports whether err is worth another attempt. Nil retries
	// every error except context cancellation.
	Retryable func(err error) bool
}

// RenamePolicy retries renames that fail because a file in the tree is
// busy or locked. Other failures, such as a cross-device rename, return at
// once.
func RenamePolicy() Policy {
	return Policy{
		Attempts:  4,
		BaseDelay: 50 * time.Millisecond,
		MaxDelay:  500 * time.Millisecond,
		Retryable: IsTransientFSError,
	}
}

// Retry calls fn until it succeeds, returns a non-retryable error, or the
// attempts run out. The error of the last call is returned.
func Retry(ctx context.Context, p Policy, fn func() error) error {
	attempts := max(p.Attempts, 1)

	var lastErr error
	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !p.retryable(lastErr) || attempt == attempts-1 {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(Backoff(attempt, p.BaseDelay, p.MaxDelay)):
		}
	}
	return lastErr
}

func (p Policy) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

// Backoff returns the wait after attempt (0-based): base * 2^attempt,
// capped at maxDelay.
func Backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	if base <= 0 {
		base = 10 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = time.Second
	}
	delay := base
	for range attempt {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	return min(delay, maxDelay)
}

// IsTransientFSError reports errors that usually clear once another
// process releases a file: busy resources and access denials.
func IsTransientFSError(err error) bool {
	return errors.Is(err, syscall.EBUSY) || errors.Is(err, fs.ErrPermission)
}
