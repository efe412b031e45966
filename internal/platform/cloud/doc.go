// Package cloud defines the control-plane client used to inspect and create
// provider resources.
//
// The core of the package is the ControlPlane interface: a thin
// describe/create surface over the provider's management API. Desired state
// is expressed as typed per-kind configs (Config implementations) rather than
// loose key/value maps, so a missing field is a compile error. The default
// implementation shells out to the gcloud CLI; tests inject a Fake.
package cloud
