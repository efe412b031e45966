package commands

import (
	"github.com/spf13/cobra"

	"github.com/Cordycepsers/nexusforge-platform-sub000/cmd/nfsetup/handlers"
)

// Status returns the command for printing the recorded setup state.
func Status() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the run context and per-stage progress",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Status()
		},
	}
}
