package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastOpts() []Option {
	return []Option{
		WithMaxAttempts(3),
		WithInitialDelay(time.Millisecond),
	}
}

func TestWithExponentialBackoff_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		calls++
		return nil
	}, fastOpts()...)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithExponentialBackoff_TransientFailureThenSuccess(t *testing.T) {
	calls := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("rate limit exceeded")
		}
		return nil
	}, fastOpts()...)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithExponentialBackoff_ExhaustsAttempts(t *testing.T) {
	providerErr := errors.New("rate limit exceeded")
	calls := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		calls++
		return providerErr
	}, fastOpts()...)

	require.Error(t, err)
	assert.Equal(t, 3, calls, "attempts are bounded")
	assert.ErrorIs(t, err, providerErr, "last provider error stays in the chain")
}

func TestWithExponentialBackoff_FatalStopsImmediately(t *testing.T) {
	quotaErr := errors.New("Quota 'CPUS' exceeded. Limit: 8.0 in region us-central1")
	calls := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		calls++
		return Fatal(quotaErr)
	}, fastOpts()...)

	require.Error(t, err)
	assert.Equal(t, 1, calls, "fatal errors are not retried")
	assert.ErrorIs(t, err, quotaErr)
}

func TestWithExponentialBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := WithExponentialBackoff(ctx, func() error {
		calls++
		cancel() // cancel while the loop would back off
		return errors.New("rate limit exceeded")
	},
		WithMaxAttempts(5),
		WithInitialDelay(time.Minute),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "no further attempts after cancellation")
}

func TestWithExponentialBackoff_AttemptFloor(t *testing.T) {
	calls := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		calls++
		return errors.New("rate limit exceeded")
	},
		WithMaxAttempts(0),
		WithInitialDelay(time.Millisecond),
	)

	require.Error(t, err)
	assert.Equal(t, 1, calls, "the operation always runs at least once")
}

func TestFatal_NilIsNil(t *testing.T) {
	assert.NoError(t, Fatal(nil))
}

func TestIsFatal(t *testing.T) {
	base := errors.New("permission denied")

	assert.False(t, IsFatal(base))
	assert.True(t, IsFatal(Fatal(base)))
	// Marked errors stay fatal through further wrapping.
	assert.True(t, IsFatal(errors.Join(errors.New("describe nf-vpc"), Fatal(base))))
}

func TestFatal_PreservesErrorText(t *testing.T) {
	providerText := "ERROR: (gcloud.compute.networks.create) already exists"
	err := Fatal(errors.New(providerText))

	assert.Equal(t, providerText, err.Error())
}
