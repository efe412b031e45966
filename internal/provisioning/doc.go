// Package provisioning contains the resource reconciler and stage executor.
//
// A Stage is an ordered list of resource descriptors plus an optional
// post-step. Each descriptor is reconciled with describe-then-create
// semantics: a resource that already matches its desired configuration is a
// no-op, a resource that exists with a different configuration is skipped
// with a warning, and a missing resource is created. Transient control-plane
// errors are retried with bounded exponential backoff; anything else fails
// the stage.
//
// The Observer interface carries structured events for everything the
// executor does, so command handlers can render per-resource output without
// the reconciler knowing about terminals.
package provisioning
