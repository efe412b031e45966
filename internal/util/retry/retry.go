package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// maxBackoffDelay caps the delay growth. Provider rate limits clear within
// seconds; waiting longer only stretches a failing run.
const maxBackoffDelay = 30 * time.Second

// Options holds the retry parameters for one operation.
type Options struct {
	// MaxAttempts is the total number of times the operation runs,
	// including the first try.
	MaxAttempts int

	// InitialDelay is the wait after the first failure. It doubles after
	// every further failure, capped at maxBackoffDelay.
	InitialDelay time.Duration
}

// Option adjusts the retry parameters.
type Option func(*Options)

// WithMaxAttempts sets the total number of attempts.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		o.MaxAttempts = n
	}
}

// WithInitialDelay sets the delay after the first failure.
func WithInitialDelay(d time.Duration) Option {
	return func(o *Options) {
		o.InitialDelay = d
	}
}

// WithExponentialBackoff runs operation until it succeeds, returns an error
// marked with Fatal, or the attempts are exhausted. Context cancellation is
// honored between attempts.
func WithExponentialBackoff(ctx context.Context, operation func() error, opts ...Option) error {
	o := &Options{
		MaxAttempts:  3,
		InitialDelay: time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.MaxAttempts < 1 {
		o.MaxAttempts = 1
	}

	delay := o.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= o.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if IsFatal(err) {
			return err
		}

		if attempt < o.MaxAttempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("canceled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(delay):
				delay *= 2
				if delay > maxBackoffDelay {
					delay = maxBackoffDelay
				}
			}
		}
	}

	return fmt.Errorf("%d attempts exhausted: %w", o.MaxAttempts, lastErr)
}

// FatalError marks an error as not worth retrying. The control-plane client
// classifies provider failures; everything that is not transient (quota
// exhaustion, invalid arguments, permission denied) gets wrapped with Fatal
// so the loop stops on the first occurrence.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable).
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err is marked fatal anywhere in its chain.
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
