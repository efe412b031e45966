package ui

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Confirmer asks the user to approve an action.
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptConfirmer asks via an interactive form.
type PromptConfirmer struct{}

// Confirm implements Confirmer.
func (PromptConfirmer) Confirm(title, description string) (bool, error) {
	proceed := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&proceed),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return proceed, nil
}

// AutoConfirmer approves everything, for --yes and non-interactive runs.
type AutoConfirmer struct{}

// Confirm implements Confirmer.
func (AutoConfirmer) Confirm(string, string) (bool, error) {
	return true, nil
}
