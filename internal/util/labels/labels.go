// Package labels provides consistent labeling for provider resources.
//
// Every labelable resource nfsetup creates carries the same label set, so
// all of a project's resources can be listed and audited with one filter.
// Keys follow the provider's label constraints: lowercase letters, digits,
// hyphens and underscores only.
package labels

import (
	"sort"
	"strings"
)

// Standard label keys.
const (
	// KeyProject identifies which project setup a resource belongs to.
	KeyProject = "nf-project"

	// KeyManagedBy identifies the management system.
	KeyManagedBy = "managed-by"
)

// ManagedByNFSetup is the KeyManagedBy value for resources nfsetup creates.
const ManagedByNFSetup = "nfsetup"

// Managed returns the label set stamped on every labelable resource nfsetup
// creates for a project.
func Managed(projectID string) map[string]string {
	return map[string]string{
		KeyProject:   projectID,
		KeyManagedBy: ManagedByNFSetup,
	}
}

// Flag renders a label set as the comma-separated key=value form the
// provider CLI expects. Keys are sorted so invocations are deterministic.
func Flag(set map[string]string) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+set[k])
	}
	return strings.Join(pairs, ",")
}
