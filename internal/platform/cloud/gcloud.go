package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/util/labels"
)

// Composite name conventions for resources that are not addressable by a
// single name on the provider side:
//
//	identity-provider: "<pool>/<provider>"
//	iam-binding:       "<target>|<role>|<member>"
//
// The stage catalog builds these names; nothing else needs to know about them.

// runnerFunc executes the provider CLI and returns its stdout. Failures must
// carry the provider's stderr text verbatim.
type runnerFunc func(ctx context.Context, args ...string) ([]byte, error)

// GCloudClient implements ControlPlane by shelling out to the gcloud CLI.
//
// Provisioning calls routinely take seconds to minutes; every call blocks
// until the CLI returns. Region and zone scope the resources that need them
// (subnets, instances, backup jobs).
type GCloudClient struct {
	project string
	region  string
	zone    string
	run     runnerFunc
}

// NewGCloudClient creates a control-plane client bound to one project.
func NewGCloudClient(project, region, zone string) *GCloudClient {
	return &GCloudClient{
		project: project,
		region:  region,
		zone:    zone,
		run:     runGCloud,
	}
}

// runGCloud invokes the gcloud binary. On failure the returned error contains
// the full stderr output so callers can surface it unmodified.
func runGCloud(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "gcloud", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("gcloud %s: %s", args[0], detail)
	}

	return stdout.Bytes(), nil
}

// DescribeResource implements ControlPlane.
func (c *GCloudClient) DescribeResource(ctx context.Context, kind Kind, name string) (bool, map[string]string, error) {
	args, err := c.describeArgs(kind, name)
	if err != nil {
		return false, nil, err
	}

	out, err := c.run(ctx, args...)
	if err != nil {
		if isNotFoundOutput(err) {
			return false, nil, nil
		}
		return false, nil, classifyProviderOutput(kind, name, err)
	}

	observed, err := c.observeOutput(kind, name, out)
	if err != nil {
		return false, nil, fmt.Errorf("parse %s %q describe output: %w", kind, name, err)
	}
	if observed == nil {
		// Valid response, resource absent (list-style describes).
		return false, nil, nil
	}

	return true, observed, nil
}

// CreateResource implements ControlPlane.
func (c *GCloudClient) CreateResource(ctx context.Context, kind Kind, name string, cfg Config) error {
	args, err := c.createArgs(kind, name, cfg)
	if err != nil {
		return err
	}

	if _, err := c.run(ctx, args...); err != nil {
		return classifyProviderOutput(kind, name, err)
	}
	return nil
}

// describeArgs maps a resource kind to its gcloud describe invocation.
func (c *GCloudClient) describeArgs(kind Kind, name string) ([]string, error) {
	proj := "--project=" + c.project

	switch kind {
	case KindAPIService:
		return []string{"services", "list", "--enabled", "--filter=config.name=" + name, "--format=json", proj}, nil
	case KindNetwork:
		return []string{"compute", "networks", "describe", name, "--format=json", proj}, nil
	case KindSubnet:
		return []string{"compute", "networks", "subnets", "describe", name, "--region=" + c.region, "--format=json", proj}, nil
	case KindFirewallRule:
		return []string{"compute", "firewall-rules", "describe", name, "--format=json", proj}, nil
	case KindServiceAccount:
		return []string{"iam", "service-accounts", "describe", ServiceAccountEmail(name, c.project), "--format=json", proj}, nil
	case KindIAMBinding:
		target, _, _, err := splitBindingName(name)
		if err != nil {
			return nil, err
		}
		return []string{"iam", "service-accounts", "get-iam-policy", target, "--format=json", proj}, nil
	case KindSecret:
		return []string{"secrets", "describe", name, "--format=json", proj}, nil
	case KindComputeInstance:
		return []string{"compute", "instances", "describe", name, "--zone=" + c.zone, "--format=json", proj}, nil
	case KindIdentityPool:
		return []string{"iam", "workload-identity-pools", "describe", name, "--location=global", "--format=json", proj}, nil
	case KindIdentityProvider:
		pool, provider, err := splitProviderName(name)
		if err != nil {
			return nil, err
		}
		return []string{"iam", "workload-identity-pools", "providers", "describe", provider,
			"--workload-identity-pool=" + pool, "--location=global", "--format=json", proj}, nil
	case KindLoggingSink:
		return []string{"logging", "sinks", "describe", name, "--format=json", proj}, nil
	case KindMetricsScope:
		// The scope is addressed by the monitored project, not the
		// descriptor name; describe and create must target the same
		// container or the scope is re-created on every run.
		return []string{"monitoring", "metrics-scopes", "list", "--monitored-resource-container=projects/" + c.project, "--format=json", proj}, nil
	case KindBackupJob:
		return []string{"scheduler", "jobs", "describe", name, "--location=" + c.region, "--format=json", proj}, nil
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}

// createArgs maps a typed desired config to its gcloud create invocation.
func (c *GCloudClient) createArgs(kind Kind, name string, cfg Config) ([]string, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config for %s %q", kind, name)
	}
	if cfg.Kind() != kind {
		return nil, fmt.Errorf("config kind %s does not match resource kind %s", cfg.Kind(), kind)
	}

	proj := "--project=" + c.project

	switch desired := cfg.(type) {
	case APIServiceConfig:
		return []string{"services", "enable", name, proj}, nil

	case NetworkConfig:
		return []string{"compute", "networks", "create", name,
			"--subnet-mode=" + desired.SubnetMode,
			"--mtu=" + strconv.Itoa(desired.MTU), proj}, nil

	case SubnetConfig:
		args := []string{"compute", "networks", "subnets", "create", name,
			"--network=" + desired.Network,
			"--range=" + desired.CIDR,
			"--region=" + desired.Region, proj}
		if desired.PrivateGoogleAccess {
			args = append(args, "--enable-private-ip-google-access")
		}
		return args, nil

	case FirewallRuleConfig:
		args := []string{"compute", "firewall-rules", "create", name,
			"--network=" + desired.Network,
			"--direction=" + desired.Direction,
			"--allow=" + desired.Allowed,
			"--source-ranges=" + strings.Join(desired.SourceRanges, ","), proj}
		if len(desired.TargetTags) > 0 {
			args = append(args, "--target-tags="+strings.Join(desired.TargetTags, ","))
		}
		return args, nil

	case ServiceAccountConfig:
		return []string{"iam", "service-accounts", "create", name,
			"--display-name=" + desired.DisplayName, proj}, nil

	case IAMBindingConfig:
		return []string{"iam", "service-accounts", "add-iam-policy-binding", desired.Target,
			"--role=" + desired.Role,
			"--member=" + desired.Member, proj}, nil

	case SecretConfig:
		args := []string{"secrets", "create", name,
			"--labels=" + labels.Flag(labels.Managed(c.project)), proj}
		if desired.Replication == "automatic" {
			args = append(args, "--replication-policy=automatic")
		} else {
			args = append(args, "--replication-policy=user-managed", "--locations="+desired.Replication)
		}
		return args, nil

	case ComputeInstanceConfig:
		args := []string{"compute", "instances", "create", name,
			"--machine-type=" + desired.MachineType,
			"--zone=" + desired.Zone,
			"--subnet=" + desired.Subnet,
			"--image-family=" + desired.Image,
			"--image-project=debian-cloud",
			"--boot-disk-size=" + strconv.Itoa(desired.DiskSizeGB) + "GB",
			"--labels=" + labels.Flag(labels.Managed(c.project)),
			"--no-address", proj}
		if len(desired.Tags) > 0 {
			args = append(args, "--tags="+strings.Join(desired.Tags, ","))
		}
		return args, nil

	case IdentityPoolConfig:
		return []string{"iam", "workload-identity-pools", "create", name,
			"--location=global",
			"--display-name=" + desired.DisplayName, proj}, nil

	case IdentityProviderConfig:
		_, provider, err := splitProviderName(name)
		if err != nil {
			return nil, err
		}
		return []string{"iam", "workload-identity-pools", "providers", "create-oidc", provider,
			"--workload-identity-pool=" + desired.Pool,
			"--location=global",
			"--issuer-uri=" + desired.IssuerURI,
			"--attribute-mapping=google.subject=assertion.sub,attribute.repository=assertion.repository",
			"--attribute-condition=" + desired.AttributeCondition, proj}, nil

	case LoggingSinkConfig:
		args := []string{"logging", "sinks", "create", name, desired.Destination, proj}
		if desired.Filter != "" {
			args = append(args, "--log-filter="+desired.Filter)
		}
		return args, nil

	case MetricsScopeConfig:
		return []string{"monitoring", "metrics-scopes", "create",
			"--monitored-resource-container=projects/" + desired.MonitoredProject, proj}, nil

	case BackupJobConfig:
		return []string{"scheduler", "jobs", "create", "http", name,
			"--schedule=" + desired.Schedule,
			"--location=" + c.region,
			"--uri=" + desired.Target,
			"--message-body={\"retentionDays\":" + strconv.Itoa(desired.RetentionDays) + "}", proj}, nil

	default:
		return nil, fmt.Errorf("unsupported config type %T for kind %s", cfg, kind)
	}
}

// observeOutput converts raw describe JSON into the flat attribute form the
// desired-config predicates match against. Returns a nil map when a
// list-style describe came back empty (resource absent).
func (c *GCloudClient) observeOutput(kind Kind, name string, out []byte) (map[string]string, error) {
	switch kind {
	case KindAPIService:
		var services []map[string]any
		if err := json.Unmarshal(out, &services); err != nil {
			return nil, err
		}
		if len(services) == 0 {
			return nil, nil
		}
		return map[string]string{"state": jsonString(services[0], "state")}, nil

	case KindMetricsScope:
		var scopes []map[string]any
		if err := json.Unmarshal(out, &scopes); err != nil {
			return nil, err
		}
		if len(scopes) == 0 {
			return nil, nil
		}
		return map[string]string{"monitoredProject": c.project}, nil

	case KindIAMBinding:
		return observeBinding(name, out)
	}

	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, err
	}

	switch kind {
	case KindNetwork:
		mode := "auto"
		if raw["autoCreateSubnetworks"] == false {
			mode = "custom"
		}
		return map[string]string{
			"mtu":        jsonNumber(raw, "mtu"),
			"subnetMode": mode,
		}, nil

	case KindSubnet:
		return map[string]string{
			"network":             lastPathSegment(jsonString(raw, "network")),
			"ipCidrRange":         jsonString(raw, "ipCidrRange"),
			"region":              lastPathSegment(jsonString(raw, "region")),
			"privateGoogleAccess": strconv.FormatBool(raw["privateIpGoogleAccess"] == true),
		}, nil

	case KindFirewallRule:
		return map[string]string{
			"network":      lastPathSegment(jsonString(raw, "network")),
			"direction":    jsonString(raw, "direction"),
			"allowed":      flattenAllowed(raw["allowed"]),
			"sourceRanges": joinAnySlice(raw["sourceRanges"]),
			"targetTags":   joinAnySlice(raw["targetTags"]),
		}, nil

	case KindServiceAccount:
		return map[string]string{"displayName": jsonString(raw, "displayName")}, nil

	case KindSecret:
		replication := "automatic"
		if rep, ok := raw["replication"].(map[string]any); ok {
			if _, auto := rep["automatic"]; !auto {
				replication = "user-managed"
			}
		}
		return map[string]string{"replication": replication}, nil

	case KindComputeInstance:
		subnet := ""
		if ifaces, ok := raw["networkInterfaces"].([]any); ok && len(ifaces) > 0 {
			if iface, ok := ifaces[0].(map[string]any); ok {
				subnet = lastPathSegment(jsonString(iface, "subnetwork"))
			}
		}
		tags := ""
		if tagBlock, ok := raw["tags"].(map[string]any); ok {
			tags = joinAnySlice(tagBlock["items"])
		}
		observed := map[string]string{
			"machineType": lastPathSegment(jsonString(raw, "machineType")),
			"zone":        lastPathSegment(jsonString(raw, "zone")),
			"subnet":      subnet,
			"status":      jsonString(raw, "status"),
		}
		if tags != "" {
			observed["tags"] = tags
		}
		return observed, nil

	case KindIdentityPool:
		return map[string]string{
			"displayName": jsonString(raw, "displayName"),
			"state":       jsonString(raw, "state"),
		}, nil

	case KindIdentityProvider:
		pool, _, err := splitProviderName(name)
		if err != nil {
			return nil, err
		}
		issuer := ""
		if oidc, ok := raw["oidc"].(map[string]any); ok {
			issuer = jsonString(oidc, "issuerUri")
		}
		return map[string]string{
			"pool":               pool,
			"issuerUri":          issuer,
			"attributeCondition": jsonString(raw, "attributeCondition"),
		}, nil

	case KindLoggingSink:
		return map[string]string{
			"destination": jsonString(raw, "destination"),
			"filter":      jsonString(raw, "filter"),
		}, nil

	case KindBackupJob:
		target := ""
		if http, ok := raw["httpTarget"].(map[string]any); ok {
			target = jsonString(http, "uri")
		}
		return map[string]string{
			"schedule": jsonString(raw, "schedule"),
			"target":   target,
		}, nil
	}

	return nil, fmt.Errorf("unknown resource kind %q", kind)
}

// observeBinding scans an IAM policy document for the binding encoded in the
// composite name. Absence of the binding means the resource does not exist,
// reported as a nil attribute map.
func observeBinding(name string, out []byte) (map[string]string, error) {
	target, role, member, err := splitBindingName(name)
	if err != nil {
		return nil, err
	}

	var policy struct {
		Bindings []struct {
			Role    string   `json:"role"`
			Members []string `json:"members"`
		} `json:"bindings"`
	}
	if err := json.Unmarshal(out, &policy); err != nil {
		return nil, err
	}

	for _, binding := range policy.Bindings {
		if binding.Role != role {
			continue
		}
		for _, m := range binding.Members {
			if m == member {
				return map[string]string{"target": target, "member": member, "role": role}, nil
			}
		}
	}
	return nil, nil
}

// BindingName builds the composite iam-binding resource name.
func BindingName(target, role, member string) string {
	return target + "|" + role + "|" + member
}

func splitBindingName(name string) (target, role, member string, err error) {
	parts := strings.SplitN(name, "|", 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("malformed iam-binding name %q (want target|role|member)", name)
	}
	return parts[0], parts[1], parts[2], nil
}

// ProviderName builds the composite identity-provider resource name.
func ProviderName(pool, provider string) string {
	return pool + "/" + provider
}

func splitProviderName(name string) (pool, provider string, err error) {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed identity-provider name %q (want pool/provider)", name)
	}
	return parts[0], parts[1], nil
}

func jsonString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func jsonNumber(m map[string]any, key string) string {
	if v, ok := m[key].(float64); ok {
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}

func lastPathSegment(url string) string {
	if url == "" {
		return ""
	}
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

func joinAnySlice(v any) string {
	items, ok := v.([]any)
	if !ok {
		return ""
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return strings.Join(out, ",")
}

// flattenAllowed renders a firewall "allowed" block into the compact
// "proto:port" form used by the desired config.
func flattenAllowed(v any) string {
	rules, ok := v.([]any)
	if !ok {
		return ""
	}
	var out []string
	for _, r := range rules {
		rule, ok := r.(map[string]any)
		if !ok {
			continue
		}
		proto := jsonString(rule, "IPProtocol")
		ports := joinAnySlice(rule["ports"])
		if ports != "" {
			for _, p := range strings.Split(ports, ",") {
				out = append(out, proto+":"+p)
			}
		} else {
			out = append(out, proto)
		}
	}
	return strings.Join(out, ",")
}
