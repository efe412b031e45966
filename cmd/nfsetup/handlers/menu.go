package handlers

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning/catalog"
)

// Menu actions.
const (
	menuSetup  = "setup"
	menuResume = "resume"
	menuRerun  = "rerun"
	menuStatus = "status"
	menuClear  = "clear"
	menuExit   = "exit"
)

// runMenuForm is a variable for test injection.
var runMenuForm = func(ctx context.Context) (string, error) {
	choice := menuSetup
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("nfsetup").
				Description("What do you want to do?").
				Options(
					huh.NewOption("Start a fresh setup", menuSetup),
					huh.NewOption("Resume the previous run", menuResume),
					huh.NewOption("Re-run a stage", menuRerun),
					huh.NewOption("View status", menuStatus),
					huh.NewOption("Clear recorded state", menuClear),
					huh.NewOption("Exit", menuExit),
				).
				Value(&choice),
		),
	).RunWithContext(ctx)
	return choice, err
}

// pickStage is a variable for test injection.
var pickStage = func(ctx context.Context) (string, error) {
	stages := catalog.Stages()
	opts := make([]huh.Option[string], len(stages))
	for i, s := range stages {
		opts[i] = huh.NewOption(s.Title, s.ID)
	}

	stageID := stages[0].ID
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Stage to re-run").
				Description("The stage and everything after it run again").
				Options(opts...).
				Value(&stageID),
		),
	).RunWithContext(ctx)
	return stageID, err
}

// Menu runs the interactive top-level menu shown when nfsetup is invoked
// without a subcommand on a terminal.
func Menu(ctx context.Context) error {
	if !isInteractive() {
		return errors.New("stdin is not a terminal: use a subcommand (setup, resume, status, ...)")
	}

	choice, err := runMenuForm(ctx)
	if err != nil {
		return err
	}

	switch choice {
	case menuSetup:
		return Setup(ctx, "", false)
	case menuResume:
		return Resume(ctx, false)
	case menuRerun:
		stageID, err := pickStage(ctx)
		if err != nil {
			return err
		}
		return Rerun(ctx, stageID, false)
	case menuStatus:
		return Status()
	case menuClear:
		return Clear(false)
	default:
		return nil
	}
}
