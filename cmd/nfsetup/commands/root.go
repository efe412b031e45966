// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/Cordycepsers/nexusforge-platform-sub000/cmd/nfsetup/handlers"
)

// Root returns the root command for the nfsetup CLI.
//
// Invoked without a subcommand on a terminal it opens the interactive menu;
// otherwise it prints usage.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nfsetup",
		Short: "Provision the NexusForge platform environment",
		Long: `nfsetup provisions a complete platform environment in five stages:
networking, identity federation, compute, monitoring and backup.

Progress is checkpointed after every stage, so an interrupted or failed run
can be resumed with 'nfsetup resume'. Every resource is reconciled with
describe-then-create semantics; re-running a stage never mutates resources
that already exist.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Menu(cmd.Context())
		},
	}

	cmd.AddCommand(Setup())
	cmd.AddCommand(Resume())
	cmd.AddCommand(Rerun())
	cmd.AddCommand(Status())
	cmd.AddCommand(Clear())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
