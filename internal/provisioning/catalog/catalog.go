// Package catalog defines the fixed, ordered stages of the setup workflow.
//
// The stage list is data: each stage names its resources and builds their
// desired configurations from the run context. Resource names are fixed so
// repeated runs always reconcile the same set.
package catalog

import (
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
)

// Stages returns the setup stages in execution order.
func Stages() []provisioning.Stage {
	return []provisioning.Stage{
		bootstrapStage(),
		federationStage(),
		computeStage(),
		monitoringStage(),
		backupStage(),
	}
}

// StageIDs returns the stage identifiers in execution order.
func StageIDs() []string {
	stages := Stages()
	ids := make([]string, len(stages))
	for i, s := range stages {
		ids[i] = s.ID
	}
	return ids
}

// Find returns the stage with the given ID.
func Find(id string) (provisioning.Stage, bool) {
	for _, s := range Stages() {
		if s.ID == id {
			return s, true
		}
	}
	return provisioning.Stage{}, false
}
