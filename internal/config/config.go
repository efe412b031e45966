package config

import (
	"fmt"
	"regexp"
	"strings"
)

// SetupType selects the compute footprint of the environment.
type SetupType string

// Supported setup types.
const (
	// SetupStandard provisions a minimal development instance.
	SetupStandard SetupType = "standard"
	// SetupAllInOne provisions a single larger instance hosting everything.
	SetupAllInOne SetupType = "all-in-one"
)

// projectIDRegex validates project identifiers: 6-30 lowercase alphanumeric
// characters or hyphens, starting with a letter, not ending with a hyphen.
var projectIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)

// regionRegex validates region identifiers such as "us-central1".
var regionRegex = regexp.MustCompile(`^[a-z]+-[a-z]+[0-9]$`)

// repoPartRegex validates organization and repository name components.
var repoPartRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// RunContext is the immutable-per-run parameter bag.
//
// All fields are fixed at configure time; stages only read from it.
type RunContext struct {
	ProjectID    string    `yaml:"project_id" mapstructure:"project_id"`
	Region       string    `yaml:"region" mapstructure:"region"`
	Zone         string    `yaml:"zone,omitempty" mapstructure:"zone"`
	Organization string    `yaml:"organization" mapstructure:"organization"`
	Repository   string    `yaml:"repository" mapstructure:"repository"`
	SetupType    SetupType `yaml:"setup_type" mapstructure:"setup_type"`
}

// ApplyDefaults fills derived and defaulted fields: the zone defaults to
// "<region>-a" and the setup type to standard.
func (rc *RunContext) ApplyDefaults() {
	if rc.Zone == "" && rc.Region != "" {
		rc.Zone = rc.Region + "-a"
	}
	if rc.SetupType == "" {
		rc.SetupType = SetupStandard
	}
}

// ValidationError represents a run-context validation error or warning.
type ValidationError struct {
	Field    string // Field that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// Validate runs all checks and returns any errors or warnings.
// A run context with any error must never reach a stage.
func (rc *RunContext) Validate() []ValidationError {
	var errs []ValidationError

	if rc.ProjectID == "" {
		errs = append(errs, ValidationError{
			Field:    "ProjectID",
			Message:  "project identifier is required",
			Severity: "error",
		})
	} else if !projectIDRegex.MatchString(rc.ProjectID) {
		errs = append(errs, ValidationError{
			Field:    "ProjectID",
			Message:  fmt.Sprintf("invalid project identifier %q: want 6-30 lowercase letters, digits or hyphens, starting with a letter", rc.ProjectID),
			Severity: "error",
		})
	}

	if rc.Region == "" {
		errs = append(errs, ValidationError{
			Field:    "Region",
			Message:  "region is required (e.g. 'us-central1')",
			Severity: "error",
		})
	} else if !regionRegex.MatchString(rc.Region) {
		errs = append(errs, ValidationError{
			Field:    "Region",
			Message:  fmt.Sprintf("invalid region %q", rc.Region),
			Severity: "error",
		})
	}

	if rc.Zone != "" && rc.Region != "" && !strings.HasPrefix(rc.Zone, rc.Region+"-") {
		errs = append(errs, ValidationError{
			Field:    "Zone",
			Message:  fmt.Sprintf("zone %q is not in region %q", rc.Zone, rc.Region),
			Severity: "error",
		})
	}

	if rc.Organization == "" {
		errs = append(errs, ValidationError{
			Field:    "Organization",
			Message:  "source organization is required for identity federation",
			Severity: "error",
		})
	} else if !repoPartRegex.MatchString(rc.Organization) {
		errs = append(errs, ValidationError{
			Field:    "Organization",
			Message:  fmt.Sprintf("invalid organization name %q", rc.Organization),
			Severity: "error",
		})
	}

	if rc.Repository == "" {
		errs = append(errs, ValidationError{
			Field:    "Repository",
			Message:  "source repository is required for identity federation",
			Severity: "error",
		})
	} else if !repoPartRegex.MatchString(rc.Repository) {
		errs = append(errs, ValidationError{
			Field:    "Repository",
			Message:  fmt.Sprintf("invalid repository name %q", rc.Repository),
			Severity: "error",
		})
	}

	switch rc.SetupType {
	case SetupStandard, SetupAllInOne:
	case "":
		errs = append(errs, ValidationError{
			Field:    "SetupType",
			Message:  "setup type is required ('standard' or 'all-in-one')",
			Severity: "error",
		})
	default:
		errs = append(errs, ValidationError{
			Field:    "SetupType",
			Message:  fmt.Sprintf("unknown setup type %q ('standard' or 'all-in-one')", rc.SetupType),
			Severity: "error",
		})
	}

	return errs
}

// Err folds validation errors into a single error, ignoring warnings.
// Returns nil when the run context is valid.
func (rc *RunContext) Err() error {
	var msgs []string
	for _, ve := range rc.Validate() {
		if ve.IsError() {
			msgs = append(msgs, ve.Error())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("run context validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

// SourceRepo returns the "organization/repository" form used in federation
// attribute conditions.
func (rc *RunContext) SourceRepo() string {
	return rc.Organization + "/" + rc.Repository
}
