package catalog

import (
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
)

// Fixed resource names of the federation stage.
const (
	DeployerAccountName  = "nf-deployer"
	IdentityPoolName     = "nf-github-pool"
	IdentityProviderName = "nf-github-provider"
	AppSecretsName       = "nf-app-secrets"

	oidcIssuerURI            = "https://token.actions.githubusercontent.com"
	workloadIdentityUserRole = "roles/iam.workloadIdentityUser"
)

// federationStage creates the deployer service account and the workload
// identity federation chain that lets the source repository's workflows
// impersonate it, plus the application secret container.
func federationStage() provisioning.Stage {
	return provisioning.Stage{
		ID:    "federation",
		Title: "Identity Federation",
		Resources: func(ctx *provisioning.Context) []provisioning.Descriptor {
			deployerEmail := cloud.ServiceAccountEmail(DeployerAccountName, ctx.Run.ProjectID)
			member := federatedMember(ctx.Run.ProjectID, ctx.Run.SourceRepo())

			return []provisioning.Descriptor{
				{
					Name: DeployerAccountName,
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.ServiceAccountConfig{DisplayName: "NexusForge deployer"}
					},
				},
				{
					Name: IdentityPoolName,
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.IdentityPoolConfig{DisplayName: "GitHub Actions pool"}
					},
				},
				{
					Name: cloud.ProviderName(IdentityPoolName, IdentityProviderName),
					Desired: func(ctx *provisioning.Context) cloud.Config {
						return cloud.IdentityProviderConfig{
							Pool:               IdentityPoolName,
							IssuerURI:          oidcIssuerURI,
							AttributeCondition: attributeCondition(ctx.Run.SourceRepo()),
						}
					},
				},
				{
					Name: cloud.BindingName(deployerEmail, workloadIdentityUserRole, member),
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.IAMBindingConfig{
							Target: deployerEmail,
							Member: member,
							Role:   workloadIdentityUserRole,
						}
					},
				},
				{
					Name: AppSecretsName,
					Desired: func(*provisioning.Context) cloud.Config {
						return cloud.SecretConfig{Replication: "automatic"}
					},
				},
			}
		},
	}
}

// attributeCondition scopes the provider to one repository, so tokens from
// any other repository in the issuer are rejected.
func attributeCondition(sourceRepo string) string {
	return fmt.Sprintf("attribute.repository == %q", sourceRepo)
}

// federatedMember is the principal set matching tokens from the source
// repository via the federation pool.
func federatedMember(projectID, sourceRepo string) string {
	return fmt.Sprintf(
		"principalSet://iam.googleapis.com/projects/%s/locations/global/workloadIdentityPools/%s/attribute.repository/%s",
		projectID, IdentityPoolName, sourceRepo)
}
