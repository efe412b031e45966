package catalog

import (
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
)

// Fixed resource names of the bootstrap stage.
const (
	NetworkName      = "nf-vpc"
	SubnetName       = "nf-subnet"
	SubnetCIDR       = "10.10.0.0/24"
	InternalRuleName = "nf-allow-internal"
	IAPSSHRuleName   = "nf-allow-iap-ssh"
	iapSourceRange   = "35.235.240.0/20"
	sshTag           = "nf-ssh"
	networkMTU       = 1460
)

// requiredAPIs are enabled before anything else touches the project.
var requiredAPIs = []string{
	"compute.googleapis.com",
	"iam.googleapis.com",
	"secretmanager.googleapis.com",
	"logging.googleapis.com",
}

// bootstrapStage enables the required APIs and creates the network,
// subnet and firewall rules. Producers precede consumers: the network
// exists before the subnet and rules that reference it.
func bootstrapStage() provisioning.Stage {
	return provisioning.Stage{
		ID:    "bootstrap",
		Title: "Bootstrap & Networking",
		Resources: func(ctx *provisioning.Context) []provisioning.Descriptor {
			var descs []provisioning.Descriptor

			for _, api := range requiredAPIs {
				descs = append(descs, provisioning.Descriptor{
					Name: api,
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.APIServiceConfig{}
					},
				})
			}

			descs = append(descs,
				provisioning.Descriptor{
					Name: NetworkName,
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.NetworkConfig{MTU: networkMTU, SubnetMode: "custom"}
					},
				},
				provisioning.Descriptor{
					Name: SubnetName,
					Desired: func(ctx *provisioning.Context) cloud.Config {
						return cloud.SubnetConfig{
							Network:             NetworkName,
							CIDR:                SubnetCIDR,
							Region:              ctx.Run.Region,
							PrivateGoogleAccess: true,
						}
					},
				},
				provisioning.Descriptor{
					Name: InternalRuleName,
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.FirewallRuleConfig{
							Network:      NetworkName,
							Direction:    "INGRESS",
							Allowed:      "tcp,udp,icmp",
							SourceRanges: []string{SubnetCIDR},
						}
					},
				},
				provisioning.Descriptor{
					Name: IAPSSHRuleName,
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.FirewallRuleConfig{
							Network:      NetworkName,
							Direction:    "INGRESS",
							Allowed:      "tcp:22",
							SourceRanges: []string{iapSourceRange},
							TargetTags:   []string{sshTag},
						}
					},
				},
			)

			return descs
		},
	}
}
