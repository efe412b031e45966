package provisioning

import "github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"

// Descriptor names one resource and how to build its desired configuration.
// Producers must precede their consumers within a stage.
type Descriptor struct {
	// Name is the fixed resource name.
	Name string

	// Desired builds the desired configuration from the run context.
	Desired func(ctx *Context) cloud.Config
}

// Stage is one step of the setup workflow: an ordered list of resource
// descriptors plus an optional post-step that runs after every resource
// reconciled cleanly.
type Stage struct {
	// ID is the stable stage identifier persisted in checkpoints.
	ID string

	// Title is the human-readable stage name shown in status output.
	Title string

	// Resources returns the descriptors for this run. The list may depend
	// on the run context (e.g. the compute footprint).
	Resources func(ctx *Context) []Descriptor

	// Post runs after all resources reconciled without a fatal outcome.
	// A post-step error fails the stage.
	Post func(ctx *Context) error
}
