package commands

import (
	"github.com/spf13/cobra"

	"github.com/Cordycepsers/nexusforge-platform-sub000/cmd/nfsetup/handlers"
)

// Setup returns the command for starting a fresh run.
//
// Optional flags:
//
//	--config, -c: Path to run-context YAML file (default: auto-detect nfsetup.yaml)
//	--yes, -y:    Run all stages without confirmation prompts
func Setup() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Start a fresh environment setup",
		Long: `Start a fresh environment setup.

If no config file is specified, nfsetup looks for nfsetup.yaml in the current
directory and falls back to the interactive wizard.

A previous run's state is rejected: continue it with 'nfsetup resume' or
discard it with 'nfsetup clear'.

Examples:
  # Interactive setup (wizard when no nfsetup.yaml exists)
  nfsetup setup

  # Setup from a config file without prompts
  nfsetup setup -c production.yaml --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to run-context file (default: nfsetup.yaml)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Run without confirmation prompts")

	return cmd
}
