package wizard

import (
	"context"
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Project identity
	ProjectID string
	Region    string
	Zone      string

	// Source repository for identity federation
	Organization string
	Repository   string

	// Compute footprint
	SetupType string
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runProjectGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	if err := runLocationGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}

	if err := runFederationGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("federation: %w", err)
	}

	if err := runSetupTypeGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("setup type: %w", err)
	}

	return result, nil
}

// BuildRunContext creates a validated run context from the wizard result.
func BuildRunContext(result *Result) (*config.RunContext, error) {
	rc := &config.RunContext{
		ProjectID:    result.ProjectID,
		Region:       result.Region,
		Zone:         result.Zone,
		Organization: result.Organization,
		Repository:   result.Repository,
		SetupType:    config.SetupType(result.SetupType),
	}
	rc.ApplyDefaults()

	if err := rc.Err(); err != nil {
		return nil, err
	}
	return rc, nil
}
