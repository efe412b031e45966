package provisioning

import (
	"fmt"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/platform/cloud"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/util/retry"
)

// Reconcile drives one resource to its desired state with describe-then-act
// semantics. Only a missing resource triggers a create; an existing resource
// is never mutated.
func Reconcile(ctx *Context, desc Descriptor) ReconciliationResult {
	desired := desc.Desired(ctx)
	kind := desired.Kind()

	exists, observed, err := describeWithRetry(ctx, kind, desc.Name)
	if err != nil {
		return ReconciliationResult{
			Kind:    kind,
			Name:    desc.Name,
			Outcome: OutcomeFatalError,
			Detail:  err.Error(),
		}
	}

	if exists {
		ctx.State.Record(kind, desc.Name, observed)
		if desired.Matches(observed) {
			ctx.Observer.Event(Event{
				Type:     EventResourceExists,
				Resource: desc.Name,
				Message:  fmt.Sprintf("%s already matches desired configuration", kind),
			})
			return ReconciliationResult{Kind: kind, Name: desc.Name, Outcome: OutcomeAlreadyExists}
		}

		// Drift: never mutate, never fail. The resource stays as found.
		detail := "exists with a different configuration, left untouched"
		ctx.Observer.Event(Event{
			Type:     EventResourceSkipped,
			Resource: desc.Name,
			Message:  fmt.Sprintf("warning: %s %s", kind, detail),
		})
		return ReconciliationResult{
			Kind:    kind,
			Name:    desc.Name,
			Outcome: OutcomeSkippedByPolicy,
			Detail:  detail,
		}
	}

	ctx.Observer.Event(Event{
		Type:     EventResourceCreating,
		Resource: desc.Name,
		Message:  fmt.Sprintf("creating %s", kind),
	})

	if err := createWithRetry(ctx, kind, desc.Name, desired); err != nil {
		// A concurrent writer beat us to it. Treat exactly like the
		// describe-side already-exists path.
		if cloud.IsAlreadyExists(err) {
			ctx.Observer.Event(Event{
				Type:     EventResourceExists,
				Resource: desc.Name,
				Message:  fmt.Sprintf("%s already exists", kind),
			})
			return ReconciliationResult{Kind: kind, Name: desc.Name, Outcome: OutcomeAlreadyExists}
		}
		return ReconciliationResult{
			Kind:    kind,
			Name:    desc.Name,
			Outcome: OutcomeFatalError,
			Detail:  err.Error(),
		}
	}

	ctx.State.Record(kind, desc.Name, desired.Attributes())
	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Resource: desc.Name,
		Message:  fmt.Sprintf("%s created", kind),
	})
	return ReconciliationResult{Kind: kind, Name: desc.Name, Outcome: OutcomeCreated}
}

// describeWithRetry describes a resource, retrying transient provider errors
// with bounded exponential backoff. The returned error is the provider's
// own, not the retry wrapper, so failure details stay verbatim.
func describeWithRetry(ctx *Context, kind cloud.Kind, name string) (bool, map[string]string, error) {
	var (
		exists   bool
		observed map[string]string
		lastErr  error
	)

	err := retry.WithExponentialBackoff(ctx, func() error {
		var err error
		exists, observed, err = ctx.Cloud.DescribeResource(ctx, kind, name)
		if err == nil {
			return nil
		}
		lastErr = err
		if cloud.IsTransient(err) {
			return err
		}
		return retry.Fatal(err)
	},
		retry.WithMaxAttempts(ctx.Timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(ctx.Timeouts.RetryInitialDelay),
	)

	if err != nil {
		return false, nil, lastErr
	}
	return exists, observed, nil
}

// createWithRetry creates a resource, retrying transient provider errors.
// AlreadyExistsError is surfaced immediately for the caller to classify.
func createWithRetry(ctx *Context, kind cloud.Kind, name string, cfg cloud.Config) error {
	var lastErr error

	err := retry.WithExponentialBackoff(ctx, func() error {
		err := ctx.Cloud.CreateResource(ctx, kind, name, cfg)
		if err == nil {
			return nil
		}
		lastErr = err
		if cloud.IsTransient(err) {
			return err
		}
		return retry.Fatal(err)
	},
		retry.WithMaxAttempts(ctx.Timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(ctx.Timeouts.RetryInitialDelay),
	)

	if err != nil {
		return lastErr
	}
	return nil
}
