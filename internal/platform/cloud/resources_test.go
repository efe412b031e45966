package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkConfig_Matches(t *testing.T) {
	cfg := NetworkConfig{MTU: 1460, SubnetMode: "custom"}

	assert.True(t, cfg.Matches(map[string]string{
		"mtu":        "1460",
		"subnetMode": "custom",
		"extra":      "ignored",
	}))

	assert.False(t, cfg.Matches(map[string]string{
		"mtu":        "1500",
		"subnetMode": "custom",
	}), "differing MTU is drift")

	assert.False(t, cfg.Matches(map[string]string{"mtu": "1460"}),
		"missing attribute is drift")
}

func TestSubnetConfig_Attributes(t *testing.T) {
	cfg := SubnetConfig{
		Network:             "nf-vpc",
		CIDR:                "10.10.0.0/24",
		Region:              "us-central1",
		PrivateGoogleAccess: true,
	}

	assert.Equal(t, map[string]string{
		"network":             "nf-vpc",
		"ipCidrRange":         "10.10.0.0/24",
		"region":              "us-central1",
		"privateGoogleAccess": "true",
	}, cfg.Attributes())
}

func TestFirewallRuleConfig_Attributes(t *testing.T) {
	cfg := FirewallRuleConfig{
		Network:      "nf-vpc",
		Direction:    "INGRESS",
		Allowed:      "tcp:22",
		SourceRanges: []string{"35.235.240.0/20"},
	}

	attrs := cfg.Attributes()
	assert.Equal(t, "tcp:22", attrs["allowed"])
	assert.Equal(t, "35.235.240.0/20", attrs["sourceRanges"])
	assert.NotContains(t, attrs, "targetTags", "empty tags stay off the wire")
}

func TestComputeInstanceConfig_MatchesIgnoresStatus(t *testing.T) {
	cfg := ComputeInstanceConfig{
		MachineType: "e2-standard-2",
		Zone:        "us-central1-a",
		Subnet:      "nf-subnet",
		Image:       "debian-12",
		DiskSizeGB:  50,
	}

	// Observed carries status and other runtime fields; they must not affect
	// the drift predicate.
	assert.True(t, cfg.Matches(map[string]string{
		"machineType": "e2-standard-2",
		"zone":        "us-central1-a",
		"subnet":      "nf-subnet",
		"status":      "RUNNING",
	}))

	assert.False(t, cfg.Matches(map[string]string{
		"machineType": "e2-standard-8",
		"zone":        "us-central1-a",
		"subnet":      "nf-subnet",
	}))
}

func TestServiceAccountEmail(t *testing.T) {
	assert.Equal(t, "nf-deployer@nf-test-1.iam.gserviceaccount.com",
		ServiceAccountEmail("nf-deployer", "nf-test-1"))
}

func TestIdentityProviderConfig_Matches(t *testing.T) {
	cfg := IdentityProviderConfig{
		Pool:               "nf-github-pool",
		IssuerURI:          "https://token.actions.githubusercontent.com",
		AttributeCondition: `attribute.repository == "acme/platform"`,
	}

	assert.True(t, cfg.Matches(cfg.Attributes()))

	drifted := cfg.Attributes()
	drifted["attributeCondition"] = `attribute.repository == "other/repo"`
	assert.False(t, cfg.Matches(drifted))
}

func TestBackupJobConfig_Attributes(t *testing.T) {
	cfg := BackupJobConfig{Schedule: "0 3 * * *", RetentionDays: 7, Target: "nf-dev-instance"}

	assert.Equal(t, map[string]string{
		"schedule":      "0 3 * * *",
		"retentionDays": "7",
		"target":        "nf-dev-instance",
	}, cfg.Attributes())
}
