package commands

import (
	"github.com/spf13/cobra"

	"github.com/Cordycepsers/nexusforge-platform-sub000/cmd/nfsetup/handlers"
)

// Resume returns the command for continuing a previous run.
func Resume() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Continue the previous run from the first unfinished stage",
		Long: `Continue the previous run from the first unfinished stage.

Completed stages are not executed again. A stage that was in progress when
the process stopped is repeated from the top, which is safe: resources that
were already created are detected and left alone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Resume(cmd.Context(), yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Run without confirmation prompts")

	return cmd
}
