// Package main is the entry point for the nfsetup CLI.
//
// nfsetup provisions a complete NexusForge platform environment in five
// checkpointed stages: networking, identity federation, compute, monitoring
// and backup. Progress is persisted between invocations, so interrupted or
// failed runs are resumed rather than restarted.
//
// Commands: setup, resume, rerun, status, clear.
//
// For detailed usage information, run:
//
//	nfsetup --help
package main

import (
	"fmt"
	"os"

	"github.com/Cordycepsers/nexusforge-platform-sub000/cmd/nfsetup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
