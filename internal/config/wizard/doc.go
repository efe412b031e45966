// Package wizard provides the interactive configuration wizard for nfsetup.
//
// This package implements a TUI-based wizard that guides users through
// creating a run-context configuration file. It uses charmbracelet/huh for
// form-based input collection.
//
// The main entry point is RunWizard, which orchestrates question groups
// and returns a Result. Use BuildRunContext to convert results to a
// config.RunContext, and config.WriteFile to persist the YAML output.
package wizard
