package cloud

import "context"

// Kind identifies a provider resource type the orchestrator can reconcile.
type Kind string

// Resource kinds handled by the provisioning workflow.
const (
	KindAPIService       Kind = "api-service"
	KindNetwork          Kind = "network"
	KindSubnet           Kind = "subnet"
	KindFirewallRule     Kind = "firewall-rule"
	KindServiceAccount   Kind = "service-account"
	KindIAMBinding       Kind = "iam-binding"
	KindSecret           Kind = "secret"
	KindComputeInstance  Kind = "compute-instance"
	KindIdentityPool     Kind = "identity-pool"
	KindIdentityProvider Kind = "identity-provider"
	KindLoggingSink      Kind = "logging-sink"
	KindMetricsScope     Kind = "metrics-scope"
	KindBackupJob        Kind = "backup-job"
)

// Config describes the desired state of a single resource.
//
// Each resource kind has its own strongly-typed implementation; the
// reconciler only ever sees this interface.
type Config interface {
	// Kind returns the resource kind this config applies to.
	Kind() Kind

	// Attributes returns the desired state as flat provider attributes.
	Attributes() map[string]string

	// Matches reports whether the observed attributes satisfy the desired
	// state. Observed attributes the config does not care about are ignored.
	Matches(observed map[string]string) bool
}

// ControlPlane is the provider management API consumed by the reconciler.
//
// Implementations must classify failures: "already exists" conditions via
// AlreadyExistsError, recoverable provider hiccups via TransientError, and
// everything else as-is (treated as fatal by callers).
type ControlPlane interface {
	// DescribeResource reports whether the named resource exists and, if so,
	// its observed attributes.
	DescribeResource(ctx context.Context, kind Kind, name string) (exists bool, observed map[string]string, err error)

	// CreateResource creates the named resource with the desired config.
	CreateResource(ctx context.Context, kind Kind, name string, cfg Config) error
}
