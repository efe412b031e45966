// Package retry retries operations that fail transiently, with exponential
// backoff between attempts.
//
// The reconciler wraps every control-plane describe and create in
// [WithExponentialBackoff]; provider errors the client classifies as
// non-transient are marked with [Fatal] and stop the loop immediately.
package retry
