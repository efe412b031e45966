package provisioning

import "github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"

// State holds observed resource attributes shared across stages.
// It is progressively populated as resources are reconciled and is consulted
// by later stages and post-steps that need earlier results.
type State struct {
	observed map[string]map[string]string
}

// NewState creates an empty run state.
func NewState() *State {
	return &State{
		observed: make(map[string]map[string]string),
	}
}

func stateKey(kind cloud.Kind, name string) string {
	return string(kind) + "/" + name
}

// Record stores the observed attributes for a resource.
func (s *State) Record(kind cloud.Kind, name string, attrs map[string]string) {
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	s.observed[stateKey(kind, name)] = copied
}

// Observed returns the recorded attributes for a resource, or nil.
func (s *State) Observed(kind cloud.Kind, name string) map[string]string {
	return s.observed[stateKey(kind, name)]
}

// Attribute returns one recorded attribute, or "" when absent.
func (s *State) Attribute(kind cloud.Kind, name, attr string) string {
	if attrs := s.observed[stateKey(kind, name)]; attrs != nil {
		return attrs[attr]
	}
	return ""
}
