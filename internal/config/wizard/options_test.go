package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsToOptions(t *testing.T) {
	opts := RegionsToOptions()
	require.Len(t, opts, len(Regions))
	assert.Equal(t, "us-central1", opts[0].Value)
	assert.Contains(t, opts[0].Key, "Iowa")
}

func TestSetupTypesToOptions(t *testing.T) {
	opts := SetupTypesToOptions()
	require.Len(t, opts, 2)
	assert.Equal(t, "standard", opts[0].Value)
	assert.Equal(t, "all-in-one", opts[1].Value)
}

func TestZonesToOptions(t *testing.T) {
	opts := ZonesToOptions("us-west1")
	require.Len(t, opts, 3)
	assert.Equal(t, "us-west1-a", opts[0].Value)
	assert.Equal(t, "us-west1-b", opts[1].Value)
	assert.Equal(t, "us-west1-c", opts[2].Value)
}

func TestRegionsMatchExpectedFormat(t *testing.T) {
	for _, r := range Regions {
		assert.Regexp(t, `^[a-z]+-[a-z]+[0-9]$`, r.Value)
	}
}
