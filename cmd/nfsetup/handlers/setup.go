package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/config"
)

// Setup starts a fresh run: resolve the run context (config file or wizard),
// persist a pending document and execute all stages in order.
//
// A pre-existing state file is rejected; use Resume to continue it or Clear
// to discard it.
func Setup(ctx context.Context, configPath string, yes bool) error {
	rc, err := resolveRunContext(ctx, configPath)
	if err != nil {
		return err
	}

	return withLock(func() error {
		store := newStore()
		mgr, err := newManager(store, rc, yes)
		if err != nil {
			return err
		}

		if _, err := mgr.Configure(ctx, rc); err != nil {
			return err
		}

		fmt.Printf("Setting up project %s (%s)\n", rc.ProjectID, rc.SetupType)
		return mgr.Run(ctx)
	})
}

// resolveRunContext loads the run context from the given file, the default
// file, or the interactive wizard (persisting the wizard's answers).
func resolveRunContext(ctx context.Context, configPath string) (*config.RunContext, error) {
	if configPath != "" {
		return loadConfigFile(configPath)
	}

	if path, err := findConfigFile(); err == nil {
		return loadConfigFile(path)
	}

	if !isInteractive() {
		return nil, errors.New("no config file found and stdin is not a terminal: pass -c <file>")
	}

	result, err := runWizard(ctx)
	if err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	rc, err := buildWizardContext(result)
	if err != nil {
		return nil, err
	}

	if err := writeConfigFile(rc, config.DefaultConfigFile); err != nil {
		return nil, err
	}
	fmt.Printf("Configuration saved to %s\n", config.DefaultConfigFile)

	return rc, nil
}
