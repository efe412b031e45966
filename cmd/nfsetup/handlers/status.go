package handlers

import (
	"errors"
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/checkpoint"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning/catalog"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/ui"
)

// Status prints the stage table and run context of the persisted document.
func Status() error {
	doc, err := newStore().Load()
	if err != nil {
		if errors.Is(err, checkpoint.ErrNoPriorRun) {
			fmt.Println("No setup run recorded. Run 'nfsetup setup' to start one.")
			return nil
		}
		return err
	}

	fmt.Print(ui.RenderStatus(doc, catalog.Stages()))
	return nil
}

// Clear removes the persisted document after confirmation.
func Clear(yes bool) error {
	store := newStore()

	if _, err := store.Load(); err != nil {
		if errors.Is(err, checkpoint.ErrNoPriorRun) {
			fmt.Println("Nothing to clear.")
			return nil
		}
		// A corrupt state file is exactly what clear is for.
		fmt.Println("State file is unreadable, clearing it.")
	}

	if !yes {
		if !isInteractive() {
			return errors.New("stdin is not a terminal: pass --yes to clear without confirmation")
		}
		proceed, err := confirmer.Confirm(
			"Clear recorded setup state?",
			"Provider resources are not touched; only the local state file is removed.",
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Setup state cleared.")
	return nil
}
