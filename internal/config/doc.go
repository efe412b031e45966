// Package config defines the run context: the operator-supplied parameters
// threaded through every provisioning stage.
//
// The run context is validated once, when a run is configured, and never
// re-validated mid-run. Changing a parameter requires clearing the saved
// state and starting over.
package config
