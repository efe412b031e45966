package cloud

import (
	"errors"
	"fmt"
	"strings"
)

// AlreadyExistsError indicates a create call raced with another run: the
// resource came into existence between describe and create. Callers treat
// this as a successful no-op, not a failure.
type AlreadyExistsError struct {
	Kind Kind
	Name string
	Err  error
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists: %v", e.Kind, e.Name, e.Err)
}

func (e *AlreadyExistsError) Unwrap() error { return e.Err }

// IsAlreadyExists checks if an error indicates the resource already exists.
func IsAlreadyExists(err error) bool {
	var aee *AlreadyExistsError
	return errors.As(err, &aee)
}

// TransientError indicates a recoverable provider failure (network hiccup,
// rate limit, server-side 5xx). Callers may retry with backoff.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient checks if an error is worth retrying.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// alreadyExistsMarkers are substrings the provider emits when a create call
// hits an existing resource. Matched case-insensitively against the raw
// provider output.
var alreadyExistsMarkers = []string{
	"already exists",
	"alreadyexists",
	"duplicate",
	"http error 409",
	"status 409",
	"conflict",
}

// transientMarkers are substrings that indicate a recoverable failure.
var transientMarkers = []string{
	"timeout",
	"timed out",
	"temporarily unavailable",
	"connection reset",
	"connection refused",
	"rate limit",
	"ratelimitexceeded",
	"quota exceeded for quota metric 'queries'", // request quota, not resource quota
	"internal error",
	"http error 429",
	"http error 500",
	"http error 502",
	"http error 503",
	"backend error",
}

// classifyProviderOutput wraps a raw provider error based on its message
// text. The original text is preserved verbatim so operators can search
// provider documentation for it.
func classifyProviderOutput(kind Kind, name string, err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range alreadyExistsMarkers {
		if strings.Contains(msg, marker) {
			return &AlreadyExistsError{Kind: kind, Name: name, Err: err}
		}
	}
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return &TransientError{Err: err}
		}
	}
	return err
}

// isNotFoundOutput reports whether the provider output indicates the
// resource does not exist (as opposed to a real failure).
func isNotFoundOutput(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "notfound") ||
		strings.Contains(msg, "http error 404") ||
		strings.Contains(msg, "could not be found") ||
		strings.Contains(msg, "does not exist")
}
