package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/checkpoint"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/orchestration"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning/catalog"
)

// Resume continues a previous run from the lowest non-completed stage.
func Resume(ctx context.Context, yes bool) error {
	return withLock(func() error {
		store := newStore()

		rc, err := loadedRunContext(store)
		if err != nil {
			if errors.Is(err, checkpoint.ErrNoPriorRun) {
				return fmt.Errorf("%w: run 'nfsetup setup' to start one", err)
			}
			return err
		}

		mgr, err := newManager(store, rc, yes)
		if err != nil {
			return err
		}

		fmt.Printf("Resuming setup of project %s\n", rc.ProjectID)
		return mgr.Run(ctx)
	})
}

// Rerun resets the named stage and everything after it, then runs forward.
func Rerun(ctx context.Context, stageID string, yes bool) error {
	return withLock(func() error {
		stage, ok := catalog.Find(stageID)
		if !ok {
			return fmt.Errorf("%w: %s", orchestration.ErrUnknownStage, stageID)
		}

		store := newStore()

		rc, err := loadedRunContext(store)
		if err != nil {
			if errors.Is(err, checkpoint.ErrNoPriorRun) {
				return fmt.Errorf("%w: run 'nfsetup setup' to start one", err)
			}
			return err
		}

		mgr, err := newManager(store, rc, yes)
		if err != nil {
			return err
		}

		fmt.Printf("Re-running stage %q and later stages for project %s\n", stage.Title, rc.ProjectID)
		return mgr.Rerun(ctx, stageID)
	})
}
