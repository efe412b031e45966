package provisioning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
)

func testContext(fake *cloud.Fake) *Context {
	return &Context{
		Context: context.Background(),
		Run: &config.RunContext{
			ProjectID:    "nf-test-1",
			Region:       "us-central1",
			Zone:         "us-central1-a",
			Organization: "acme",
			Repository:   "platform",
			SetupType:    config.SetupStandard,
		},
		State:    NewState(),
		Cloud:    fake,
		Observer: NopObserver{},
		Timeouts: &config.Timeouts{
			InstancePollInterval: time.Millisecond,
			InstancePollAttempts: 3,
			RetryMaxAttempts:     3,
			RetryInitialDelay:    time.Millisecond,
		},
	}
}

func networkDescriptor() Descriptor {
	return Descriptor{
		Name: "nf-vpc",
		Desired: func(*Context) cloud.Config {
			return cloud.NetworkConfig{MTU: 1460, SubnetMode: "custom"}
		},
	}
}

func TestReconcile_CreatesMissingResource(t *testing.T) {
	fake := cloud.NewFake()
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	assert.Equal(t, OutcomeCreated, r.Outcome)
	assert.True(t, fake.Has(cloud.KindNetwork, "nf-vpc"))
	assert.Equal(t, "1460", ctx.State.Attribute(cloud.KindNetwork, "nf-vpc", "mtu"))
}

func TestReconcile_MatchingResourceIsNoOp(t *testing.T) {
	fake := cloud.NewFake()
	fake.Seed(cloud.KindNetwork, "nf-vpc", map[string]string{"mtu": "1460", "subnetMode": "custom"})
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	assert.Equal(t, OutcomeAlreadyExists, r.Outcome)
	assert.Empty(t, fake.CreateCalls, "no create for an already-converged resource")
}

func TestReconcile_DriftIsSkippedNotFailed(t *testing.T) {
	fake := cloud.NewFake()
	fake.Seed(cloud.KindNetwork, "nf-vpc", map[string]string{"mtu": "1500", "subnetMode": "auto"})
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	assert.Equal(t, OutcomeSkippedByPolicy, r.Outcome)
	assert.False(t, r.Failed())
	assert.Empty(t, fake.CreateCalls, "drifted resources are never mutated")
	// The drifted attributes stay as found.
	assert.Equal(t, "1500", fake.Attributes(cloud.KindNetwork, "nf-vpc")["mtu"])
}

func TestReconcile_TransientDescribeErrorIsRetried(t *testing.T) {
	fake := cloud.NewFake()
	fake.FailDescribeTransiently(cloud.KindNetwork, "nf-vpc", 2, errors.New("rate limit exceeded"))
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	assert.Equal(t, OutcomeCreated, r.Outcome)
	assert.GreaterOrEqual(t, len(fake.DescribeCalls), 3)
}

func TestReconcile_TransientErrorExhaustsRetries(t *testing.T) {
	fake := cloud.NewFake()
	fake.FailDescribeTransiently(cloud.KindNetwork, "nf-vpc", 100, errors.New("rate limit exceeded"))
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	assert.Equal(t, OutcomeFatalError, r.Outcome)
	assert.Contains(t, r.Detail, "rate limit exceeded")
}

func TestReconcile_FatalCreateErrorKeepsProviderText(t *testing.T) {
	fake := cloud.NewFake()
	providerText := "Quota 'CPUS' exceeded. Limit: 8.0 in region us-central1."
	fake.FailCreate(cloud.KindNetwork, "nf-vpc", errors.New(providerText))
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	require.Equal(t, OutcomeFatalError, r.Outcome)
	assert.Equal(t, providerText, r.Detail, "provider error text is preserved verbatim")
	assert.Len(t, fake.CreateCalls, 1, "fatal errors are not retried")
}

func TestReconcile_CreateRaceIsAlreadyExists(t *testing.T) {
	fake := cloud.NewFake()
	fake.FailCreate(cloud.KindNetwork, "nf-vpc",
		&cloud.AlreadyExistsError{Kind: cloud.KindNetwork, Name: "nf-vpc"})
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	assert.Equal(t, OutcomeAlreadyExists, r.Outcome)
	assert.False(t, r.Failed())
}

func TestReconcile_FatalDescribeErrorIsNotRetried(t *testing.T) {
	fake := cloud.NewFake()
	fake.FailDescribe(cloud.KindNetwork, "nf-vpc", errors.New("permission denied"))
	ctx := testContext(fake)

	r := Reconcile(ctx, networkDescriptor())

	assert.Equal(t, OutcomeFatalError, r.Outcome)
	assert.Contains(t, r.Detail, "permission denied")
	assert.Len(t, fake.DescribeCalls, 1)
}

func TestReconcile_IsIdempotent(t *testing.T) {
	fake := cloud.NewFake()
	ctx := testContext(fake)
	desc := networkDescriptor()

	first := Reconcile(ctx, desc)
	second := Reconcile(ctx, desc)

	assert.Equal(t, OutcomeCreated, first.Outcome)
	assert.Equal(t, OutcomeAlreadyExists, second.Outcome)
	assert.Len(t, fake.CreateCalls, 1)
}
