package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrMaxRetriesExceeded wraps the last error once every attempt has failed
var ErrMaxRetriesExceeded = errors.New("max retries exceeded")

// Policy defines retry behavior
type Policy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
	// Jitter spreads each delay by +/- the given fraction
	Jitter float64
	// Retryable classifies errors. Nil retries every error.
	Retryable func(error) bool
}

// PolicyStartup is used while waiting for backing services at boot
var PolicyStartup = Policy{
	MaxRetries:     4,
	InitialBackoff: 250 * time.Millisecond,
	MaxBackoff:     4 * time.Second,
	Multiplier:     2.0,
	Jitter:         0.1,
}

// Delay returns the backoff before retry number attempt (1-based)
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	backoff := float64(p.InitialBackoff) * math.Pow(multiplier, float64(attempt-1))
	if p.MaxBackoff > 0 && backoff > float64(p.MaxBackoff) {
		backoff = float64(p.MaxBackoff)
	}

	if p.Jitter > 0 {
		jitter := backoff * p.Jitter
		backoff = backoff - jitter + rand.Float64()*2*jitter
	}
	return time.Duration(backoff)
}

// Do runs fn until it succeeds, returns a non-retryable error, the policy
// is exhausted or ctx is done
func Do(ctx context.Context, policy Policy, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry cancelled by context: %w", ctx.Err())
			case <-time.After(policy.Delay(attempt)):
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if policy.Retryable != nil && !policy.Retryable(err) {
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrMaxRetriesExceeded, policy.MaxRetries+1, lastErr)
}
