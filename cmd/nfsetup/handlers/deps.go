// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/checkpoint"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config/wizard"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/orchestration"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/s3"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/ui"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newStore creates the checkpoint store.
	newStore = func() checkpoint.Store {
		return checkpoint.NewFileStore(checkpoint.DefaultStateFile)
	}

	// newControlPlane creates the provider client for a run context.
	newControlPlane = func(rc *config.RunContext) cloud.ControlPlane {
		return cloud.NewGCloudClient(rc.ProjectID, rc.Region, rc.Zone)
	}

	// newBackupStore creates the optional S3-compatible artifact store.
	newBackupStore = s3.FromEnv

	// acquireLock guards the state file against concurrent invocations.
	acquireLock = func() (func() error, error) {
		return checkpoint.Lock(checkpoint.DefaultLockFile)
	}

	// runWizard collects a run context interactively.
	runWizard = wizard.RunWizard

	// buildWizardContext validates wizard answers into a run context.
	buildWizardContext = wizard.BuildRunContext

	// loadConfigFile loads a run context from a YAML file.
	loadConfigFile = config.LoadFile

	// findConfigFile probes for the default config file.
	findConfigFile = config.FindConfigFile

	// writeConfigFile persists a wizard-built run context.
	writeConfigFile = config.WriteFile

	// checkPrerequisites verifies the required client tools are installed.
	checkPrerequisites = prerequisites.CheckDefault

	// isInteractive reports whether stdin is a terminal.
	isInteractive = ui.IsInteractive

	// confirmer asks the user to approve stage execution.
	confirmer ui.Confirmer = ui.PromptConfirmer{}
)

// newManager assembles the orchestration manager for one invocation.
// With yes set, stage confirmations are auto-approved.
func newManager(store checkpoint.Store, rc *config.RunContext, yes bool) (*orchestration.Manager, error) {
	if err := checkPrerequisites().Error(); err != nil {
		return nil, err
	}

	var opts []orchestration.Option
	backup, err := newBackupStore()
	if err != nil {
		return nil, fmt.Errorf("backup store: %w", err)
	}
	if backup != nil {
		opts = append(opts, orchestration.WithBackupStore(backup))
	}

	mgr := orchestration.NewManager(store, newControlPlane(rc), opts...)

	stageConfirmer := confirmer
	if yes {
		stageConfirmer = ui.AutoConfirmer{}
	} else if !isInteractive() {
		return nil, fmt.Errorf("stdin is not a terminal: pass --yes to run without confirmation")
	}
	mgr.Confirm = func(stage provisioning.Stage) (bool, error) {
		return stageConfirmer.Confirm(
			fmt.Sprintf("Run stage %q?", stage.Title),
			fmt.Sprintf("Reconciles the %s resources in project %s.", stage.ID, rc.ProjectID),
		)
	}

	return mgr, nil
}

// loadedRunContext reads the run context from the persisted document.
func loadedRunContext(store checkpoint.Store) (*config.RunContext, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	rc := doc.RunContext
	return &rc, nil
}

// withLock runs fn while holding the state lock.
func withLock(fn func() error) error {
	release, err := acquireLock()
	if err != nil {
		return err
	}
	defer release() //nolint:errcheck

	return fn()
}
