package commands

import (
	"github.com/spf13/cobra"

	"github.com/Cordycepsers/nexusforge-platform-sub000/cmd/nfsetup/handlers"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning/catalog"
)

// Rerun returns the command for re-running a stage and everything after it.
func Rerun() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:       "rerun <stage>",
		Short:     "Re-run a stage and all later stages",
		ValidArgs: catalog.StageIDs(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Long: `Re-run a stage and all later stages.

The named stage and everything after it are reset to pending and executed
again in order. Later stages are included so no stage ever stays completed
against resources older than its predecessors'.

Examples:
  nfsetup rerun compute
  nfsetup rerun monitoring --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Rerun(cmd.Context(), args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Run without confirmation prompts")

	return cmd
}
