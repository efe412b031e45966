package commands

import (
	"github.com/spf13/cobra"

	"github.com/Cordycepsers/nexusforge-platform-sub000/cmd/nfsetup/handlers"
)

// Clear returns the command for removing the recorded setup state.
func Clear() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the recorded setup state",
		Long: `Remove the recorded setup state.

Provider resources are not touched; only the local state file is removed.
The next 'nfsetup setup' starts from a blank document and re-discovers what
already exists.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Clear(yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Clear without confirmation")

	return cmd
}
