package provisioning

import (
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
)

// Outcome classifies the result of reconciling one resource.
type Outcome string

// Reconciliation outcomes.
const (
	// OutcomeCreated means the resource was missing and has been created.
	OutcomeCreated Outcome = "created"
	// OutcomeAlreadyExists means the resource already matched its desired
	// configuration; nothing was done.
	OutcomeAlreadyExists Outcome = "already-exists"
	// OutcomeSkippedByPolicy means the resource exists with a different
	// configuration. It is left untouched and reported as a warning.
	OutcomeSkippedByPolicy Outcome = "skipped-by-policy"
	// OutcomeFatalError means reconciliation failed and the stage must stop.
	OutcomeFatalError Outcome = "fatal-error"
)

// ReconciliationResult is the outcome of reconciling a single resource.
type ReconciliationResult struct {
	Kind    cloud.Kind
	Name    string
	Outcome Outcome
	// Detail carries the provider's error text verbatim for failures, or a
	// short drift description for skips.
	Detail string
}

// Failed reports whether this result stops the stage.
func (r ReconciliationResult) Failed() bool {
	return r.Outcome == OutcomeFatalError
}

// String renders the per-resource outcome line.
func (r ReconciliationResult) String() string {
	if r.Detail == "" {
		return fmt.Sprintf("%s %s/%s", r.Outcome, r.Kind, r.Name)
	}
	return fmt.Sprintf("%s %s/%s: %s", r.Outcome, r.Kind, r.Name, r.Detail)
}

// StageResult aggregates the resource results of one stage run.
type StageResult struct {
	StageID string
	Results []ReconciliationResult
	// Err is set when the stage failed, either on a resource or in the
	// post-step.
	Err error
}

// Counts returns the number of created, already-existing, skipped and failed
// resources.
func (s StageResult) Counts() (created, existed, skipped, failed int) {
	for _, r := range s.Results {
		switch r.Outcome {
		case OutcomeCreated:
			created++
		case OutcomeAlreadyExists:
			existed++
		case OutcomeSkippedByPolicy:
			skipped++
		case OutcomeFatalError:
			failed++
		}
	}
	return created, existed, skipped, failed
}

// Summary renders the stage summary line.
func (s StageResult) Summary() string {
	created, existed, skipped, failed := s.Counts()
	return fmt.Sprintf("%d created, %d already existed, %d skipped, %d failed",
		created, existed, skipped, failed)
}
