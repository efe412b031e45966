package provisioning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
)

func twoResourceStage(post func(*Context) error) Stage {
	return Stage{
		ID:    "bootstrap",
		Title: "Bootstrap",
		Resources: func(*Context) []Descriptor {
			return []Descriptor{
				{
					Name: "nf-vpc",
					Desired: func(*Context) cloud.Config {
						return cloud.NetworkConfig{MTU: 1460, SubnetMode: "custom"}
					},
				},
				{
					Name: "nf-subnet",
					Desired: func(ctx *Context) cloud.Config {
						return cloud.SubnetConfig{
							Network:             "nf-vpc",
							CIDR:                "10.10.0.0/24",
							Region:              ctx.Run.Region,
							PrivateGoogleAccess: true,
						}
					},
				},
			}
		},
		Post: post,
	}
}

func TestRunStage_AllCreated(t *testing.T) {
	fake := cloud.NewFake()
	ctx := testContext(fake)

	result := RunStage(ctx, twoResourceStage(nil))

	require.NoError(t, result.Err)
	created, existed, skipped, failed := result.Counts()
	assert.Equal(t, 2, created)
	assert.Zero(t, existed+skipped+failed)
	assert.True(t, fake.Has(cloud.KindSubnet, "nf-subnet"))
}

func TestRunStage_FailFastStopsAtFirstFatal(t *testing.T) {
	fake := cloud.NewFake()
	fake.FailCreate(cloud.KindNetwork, "nf-vpc", errors.New("permission denied"))
	ctx := testContext(fake)

	result := RunStage(ctx, twoResourceStage(nil))

	require.Error(t, result.Err)
	assert.Len(t, result.Results, 1, "later resources are not attempted")
	assert.False(t, fake.Has(cloud.KindSubnet, "nf-subnet"))
}

func TestRunStage_MixedOutcomes(t *testing.T) {
	fake := cloud.NewFake()
	fake.Seed(cloud.KindNetwork, "nf-vpc", map[string]string{"mtu": "1460", "subnetMode": "custom"})
	ctx := testContext(fake)

	result := RunStage(ctx, twoResourceStage(nil))

	require.NoError(t, result.Err)
	created, existed, _, _ := result.Counts()
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, existed)
	assert.Equal(t, "1 created, 1 already existed, 0 skipped, 0 failed", result.Summary())
}

func TestRunStage_PostStepFailureFailsStage(t *testing.T) {
	fake := cloud.NewFake()
	ctx := testContext(fake)

	result := RunStage(ctx, twoResourceStage(func(*Context) error {
		return errors.New("instance never reached RUNNING")
	}))

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "post-step failed")
	// Resources still reconciled before the post-step ran.
	assert.True(t, fake.Has(cloud.KindNetwork, "nf-vpc"))
}

func TestRunStage_PostStepSkippedAfterResourceFailure(t *testing.T) {
	fake := cloud.NewFake()
	fake.FailCreate(cloud.KindNetwork, "nf-vpc", errors.New("permission denied"))
	ctx := testContext(fake)

	postCalled := false
	result := RunStage(ctx, twoResourceStage(func(*Context) error {
		postCalled = true
		return nil
	}))

	require.Error(t, result.Err)
	assert.False(t, postCalled)
}

func TestRunStage_RerunConvergesWithoutNewCreates(t *testing.T) {
	fake := cloud.NewFake()
	ctx := testContext(fake)
	stage := twoResourceStage(nil)

	first := RunStage(ctx, stage)
	require.NoError(t, first.Err)
	createsAfterFirst := len(fake.CreateCalls)

	second := RunStage(ctx, stage)
	require.NoError(t, second.Err)

	assert.Equal(t, createsAfterFirst, len(fake.CreateCalls), "second run is a pure no-op")
	_, existed, _, _ := second.Counts()
	assert.Equal(t, 2, existed)
}
