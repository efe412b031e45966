package wizard

import (
	"context"
	"regexp"

	"github.com/charmbracelet/huh"
)

// projectIDRegex validates project identifiers: 6-30 lowercase alphanumeric
// characters or hyphens, starting with a letter, not ending with a hyphen.
var projectIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)

// repoPartRegex validates organization and repository name components.
var repoPartRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// runProjectGroup prompts for the project identifier.
func runProjectGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Identifier").
				Description("6-30 lowercase letters, digits or hyphens, starting with a letter").
				Placeholder("nf-my-project").
				Value(&result.ProjectID).
				Validate(validateProjectID),
		).Title("Project"),
	).RunWithContext(ctx)
}

// runLocationGroup prompts for region and zone. The zone options depend on
// the selected region, so the two questions run as separate forms.
func runLocationGroup(ctx context.Context, result *Result) error {
	result.Region = Regions[0].Value

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("Where the environment's resources live").
				Options(RegionsToOptions()...).
				Value(&result.Region),
		).Title("Location"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	result.Zone = result.Region + "-a"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Zone").
				Description("Zone for compute instances").
				Options(ZonesToOptions(result.Region)...).
				Value(&result.Zone),
		).Title("Zone"),
	).RunWithContext(ctx)
}

// runFederationGroup prompts for the source organization and repository
// that the identity federation stage trusts.
func runFederationGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Organization").
				Description("Source organization whose workflows may deploy").
				Placeholder("my-org").
				Value(&result.Organization).
				Validate(validateOrganization),
			huh.NewInput().
				Title("Repository").
				Description("Repository within the organization").
				Placeholder("my-repo").
				Value(&result.Repository).
				Validate(validateRepository),
		).Title("Identity Federation"),
	).RunWithContext(ctx)
}

// runSetupTypeGroup prompts for the compute footprint.
func runSetupTypeGroup(ctx context.Context, result *Result) error {
	result.SetupType = SetupTypes[0].Value

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Setup Type").
				Description("Compute footprint of the environment").
				Options(SetupTypesToOptions()...).
				Value(&result.SetupType),
		).Title("Setup Type"),
	).RunWithContext(ctx)
}

// validateProjectID validates the project identifier format.
func validateProjectID(s string) error {
	if s == "" {
		return errProjectIDRequired
	}
	if !projectIDRegex.MatchString(s) {
		return errProjectIDInvalid
	}
	return nil
}

// validateOrganization validates the organization name.
func validateOrganization(s string) error {
	if s == "" {
		return errOrgRequired
	}
	if !repoPartRegex.MatchString(s) {
		return errOrgInvalid
	}
	return nil
}

// validateRepository validates the repository name.
func validateRepository(s string) error {
	if s == "" {
		return errRepoRequired
	}
	if !repoPartRegex.MatchString(s) {
		return errRepoInvalid
	}
	return nil
}
