package cloud

import (
	"fmt"
	"strconv"
	"strings"
)

// matchesDesired reports whether every desired attribute is present in the
// observed attributes with an equal value. Extra observed attributes are
// ignored so providers can add fields without breaking the predicate.
func matchesDesired(desired, observed map[string]string) bool {
	for k, v := range desired {
		if observed[k] != v {
			return false
		}
	}
	return true
}

// APIServiceConfig enables a control-plane API on the project.
type APIServiceConfig struct{}

func (APIServiceConfig) Kind() Kind { return KindAPIService }

func (APIServiceConfig) Attributes() map[string]string {
	return map[string]string{"state": "ENABLED"}
}

func (c APIServiceConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// NetworkConfig describes a VPC network.
type NetworkConfig struct {
	MTU        int
	SubnetMode string // "custom" or "auto"
}

func (NetworkConfig) Kind() Kind { return KindNetwork }

func (c NetworkConfig) Attributes() map[string]string {
	return map[string]string{
		"mtu":        strconv.Itoa(c.MTU),
		"subnetMode": c.SubnetMode,
	}
}

func (c NetworkConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// SubnetConfig describes a regional subnet inside a network.
type SubnetConfig struct {
	Network             string
	CIDR                string
	Region              string
	PrivateGoogleAccess bool
}

func (SubnetConfig) Kind() Kind { return KindSubnet }

func (c SubnetConfig) Attributes() map[string]string {
	return map[string]string{
		"network":             c.Network,
		"ipCidrRange":         c.CIDR,
		"region":              c.Region,
		"privateGoogleAccess": strconv.FormatBool(c.PrivateGoogleAccess),
	}
}

func (c SubnetConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// FirewallRuleConfig describes an ingress firewall rule on a network.
type FirewallRuleConfig struct {
	Network      string
	Direction    string
	Allowed      string   // e.g. "tcp:22" or "tcp,udp,icmp"
	SourceRanges []string // CIDRs
	TargetTags   []string
}

func (FirewallRuleConfig) Kind() Kind { return KindFirewallRule }

func (c FirewallRuleConfig) Attributes() map[string]string {
	attrs := map[string]string{
		"network":      c.Network,
		"direction":    c.Direction,
		"allowed":      c.Allowed,
		"sourceRanges": strings.Join(c.SourceRanges, ","),
	}
	if len(c.TargetTags) > 0 {
		attrs["targetTags"] = strings.Join(c.TargetTags, ",")
	}
	return attrs
}

func (c FirewallRuleConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// ServiceAccountConfig describes an IAM service account.
type ServiceAccountConfig struct {
	DisplayName string
}

func (ServiceAccountConfig) Kind() Kind { return KindServiceAccount }

func (c ServiceAccountConfig) Attributes() map[string]string {
	return map[string]string{"displayName": c.DisplayName}
}

func (c ServiceAccountConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// ServiceAccountEmail derives the provider email for a service account name.
func ServiceAccountEmail(name, projectID string) string {
	return fmt.Sprintf("%s@%s.iam.gserviceaccount.com", name, projectID)
}

// IAMBindingConfig grants a role on a target resource to a member.
type IAMBindingConfig struct {
	Target string // resource the role is granted on
	Member string
	Role   string
}

func (IAMBindingConfig) Kind() Kind { return KindIAMBinding }

func (c IAMBindingConfig) Attributes() map[string]string {
	return map[string]string{
		"target": c.Target,
		"member": c.Member,
		"role":   c.Role,
	}
}

func (c IAMBindingConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// SecretConfig describes a secret container (no versions are managed here).
type SecretConfig struct {
	Replication string // "automatic" or a region
}

func (SecretConfig) Kind() Kind { return KindSecret }

func (c SecretConfig) Attributes() map[string]string {
	return map[string]string{"replication": c.Replication}
}

func (c SecretConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// ComputeInstanceConfig describes a VM instance.
type ComputeInstanceConfig struct {
	MachineType string
	Zone        string
	Subnet      string
	Image       string
	DiskSizeGB  int
	Tags        []string
}

func (ComputeInstanceConfig) Kind() Kind { return KindComputeInstance }

func (c ComputeInstanceConfig) Attributes() map[string]string {
	attrs := map[string]string{
		"machineType": c.MachineType,
		"zone":        c.Zone,
		"subnet":      c.Subnet,
	}
	if len(c.Tags) > 0 {
		attrs["tags"] = strings.Join(c.Tags, ",")
	}
	return attrs
}

// Matches deliberately ignores image and disk size: both are boot-time
// parameters the provider reports in a different shape, and resizing a live
// instance is out of scope. An existing instance with the same machine type,
// zone and subnet satisfies the desired state.
func (c ComputeInstanceConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// IdentityPoolConfig describes a workload identity federation pool.
type IdentityPoolConfig struct {
	DisplayName string
}

func (IdentityPoolConfig) Kind() Kind { return KindIdentityPool }

func (c IdentityPoolConfig) Attributes() map[string]string {
	return map[string]string{"displayName": c.DisplayName, "state": "ACTIVE"}
}

func (c IdentityPoolConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// IdentityProviderConfig describes an OIDC provider inside a federation pool,
// scoped to a single source repository.
type IdentityProviderConfig struct {
	Pool               string
	IssuerURI          string
	AttributeCondition string
}

func (IdentityProviderConfig) Kind() Kind { return KindIdentityProvider }

func (c IdentityProviderConfig) Attributes() map[string]string {
	return map[string]string{
		"pool":               c.Pool,
		"issuerUri":          c.IssuerURI,
		"attributeCondition": c.AttributeCondition,
	}
}

func (c IdentityProviderConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// LoggingSinkConfig routes project logs to a destination.
type LoggingSinkConfig struct {
	Destination string
	Filter      string
}

func (LoggingSinkConfig) Kind() Kind { return KindLoggingSink }

func (c LoggingSinkConfig) Attributes() map[string]string {
	attrs := map[string]string{"destination": c.Destination}
	if c.Filter != "" {
		attrs["filter"] = c.Filter
	}
	return attrs
}

func (c LoggingSinkConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// MetricsScopeConfig adds a project to the monitoring metrics scope.
type MetricsScopeConfig struct {
	MonitoredProject string
}

func (MetricsScopeConfig) Kind() Kind { return KindMetricsScope }

func (c MetricsScopeConfig) Attributes() map[string]string {
	return map[string]string{"monitoredProject": c.MonitoredProject}
}

func (c MetricsScopeConfig) Matches(observed map[string]string) bool {
	return matchesDesired(c.Attributes(), observed)
}

// BackupJobConfig schedules a recurring backup job.
type BackupJobConfig struct {
	Schedule      string // cron expression
	RetentionDays int
	Target        string // resource the job backs up
}

func (BackupJobConfig) Kind() Kind { return KindBackupJob }

func (c BackupJobConfig) Attributes() map[string]string {
	return map[string]string{
		"schedule":      c.Schedule,
		"retentionDays": strconv.Itoa(c.RetentionDays),
		"target":        c.Target,
	}
}

// Matches deliberately ignores the retention period: it rides in the job's
// message body, which the describe output does not echo back. An existing
// job with the same schedule and target satisfies the desired state.
func (c BackupJobConfig) Matches(observed map[string]string) bool {
	return matchesDesired(map[string]string{
		"schedule": c.Schedule,
		"target":   c.Target,
	}, observed)
}
