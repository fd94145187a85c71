// Package poll provides a bounded-retry loop for waiting on asynchronous
// remote operations.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds polling configuration.
type Config struct {
	Interval       time.Duration
	FailureCeiling int
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// State tracks the progress of a single polling session. A fresh State is
// created at the start of every Until call; it is never shared across
// sessions.
type State[T any] struct {
	Failures   int
	LastResult T
}

// ErrExhausted indicates the failure ceiling was reached before a terminal
// result was observed. The result returned alongside it is the last one
// observed and must not be taken as success.
var ErrExhausted = errors.New("failure ceiling reached")

// Until repeatedly invokes probe until isTerminal reports the result as
// terminal, waiting a fixed interval between attempts. A probe error counts
// as one failure; once the number of failures within this session exceeds
// the ceiling, Until gives up and returns the last observed result wrapped
// with ErrExhausted. Context cancellation aborts the wait.
//
// Until never judges whether the returned result represents success; callers
// must check it themselves, in particular after ErrExhausted.
func Until[T any](ctx context.Context, probe func(context.Context) (T, error), isTerminal func(T) bool, opts ...Option) (T, error) {
	cfg := &Config{
		Interval:       1 * time.Second,
		FailureCeiling: 25,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	var s State[T]

	for {
		result, err := probe(ctx)
		if err != nil {
			s.Failures++
		} else {
			s.LastResult = result
			if isTerminal(result) {
				return result, nil
			}
		}

		if s.Failures > cfg.FailureCeiling {
			return s.LastResult, fmt.Errorf("gave up after %d failed probes: %w", s.Failures, ErrExhausted)
		}

		select {
		case <-ctx.Done():
			return s.LastResult, fmt.Errorf("polling interrupted: %w", ctx.Err())
		case <-time.After(cfg.Interval):
		}
	}
}

// WithInterval sets the wait between probe attempts.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithFailureCeiling sets how many probe failures a session tolerates before
// giving up.
func WithFailureCeiling(n int) Option {
	return func(c *Config) {
		c.FailureCeiling = n
	}
}
