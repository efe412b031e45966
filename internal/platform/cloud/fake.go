package cloud

import (
	"context"
	"sync"
)

// Fake is an in-memory ControlPlane for tests.
//
// It records every call so tests can assert on invocation counts, supports
// seeding pre-existing resources, and can inject failures per resource.
type Fake struct {
	mu sync.Mutex

	resources map[string]map[string]string

	describeErrs  map[string]error
	createErrs    map[string]error
	transientLeft map[string]int

	// DescribeCalls and CreateCalls list the "kind/name" keys of every call
	// in order.
	DescribeCalls []string
	CreateCalls   []string
}

// NewFake creates an empty fake control plane.
func NewFake() *Fake {
	return &Fake{
		resources:     make(map[string]map[string]string),
		describeErrs:  make(map[string]error),
		createErrs:    make(map[string]error),
		transientLeft: make(map[string]int),
	}
}

func fakeKey(kind Kind, name string) string {
	return string(kind) + "/" + name
}

// Seed registers a pre-existing resource with the given observed attributes.
func (f *Fake) Seed(kind Kind, name string, observed map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	attrs := make(map[string]string, len(observed))
	for k, v := range observed {
		attrs[k] = v
	}
	f.resources[fakeKey(kind, name)] = attrs
}

// FailDescribe makes every describe of the resource return err.
func (f *Fake) FailDescribe(kind Kind, name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.describeErrs[fakeKey(kind, name)] = err
}

// FailCreate makes every create of the resource return err.
func (f *Fake) FailCreate(kind Kind, name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createErrs[fakeKey(kind, name)] = err
}

// FailDescribeTransiently makes the next n describes of the resource fail
// with a TransientError before succeeding.
func (f *Fake) FailDescribeTransiently(kind Kind, name string, n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transientLeft[fakeKey(kind, name)] = n
	f.describeErrs[fakeKey(kind, name)] = &TransientError{Err: err}
}

// DescribeResource implements ControlPlane.
func (f *Fake) DescribeResource(_ context.Context, kind Kind, name string) (bool, map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := fakeKey(kind, name)
	f.DescribeCalls = append(f.DescribeCalls, key)

	if err, ok := f.describeErrs[key]; ok {
		if left, transient := f.transientLeft[key]; transient {
			if left > 0 {
				f.transientLeft[key] = left - 1
				return false, nil, err
			}
			// Budget exhausted, fall through to a normal describe.
		} else {
			return false, nil, err
		}
	}

	attrs, exists := f.resources[key]
	if !exists {
		return false, nil, nil
	}

	observed := make(map[string]string, len(attrs))
	for k, v := range attrs {
		observed[k] = v
	}
	return true, observed, nil
}

// CreateResource implements ControlPlane. Creating a resource that already
// exists returns an AlreadyExistsError, mirroring a create race between two
// runs.
func (f *Fake) CreateResource(_ context.Context, kind Kind, name string, cfg Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := fakeKey(kind, name)
	f.CreateCalls = append(f.CreateCalls, key)

	if err, ok := f.createErrs[key]; ok {
		return err
	}

	if _, exists := f.resources[key]; exists {
		return &AlreadyExistsError{Kind: kind, Name: name, Err: errExists}
	}

	f.resources[key] = cfg.Attributes()
	return nil
}

// Has reports whether the resource exists in the fake.
func (f *Fake) Has(kind Kind, name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.resources[fakeKey(kind, name)]
	return ok
}

// Attributes returns a copy of the stored attributes, or nil.
func (f *Fake) Attributes(kind Kind, name string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	attrs, ok := f.resources[fakeKey(kind, name)]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

// TotalCalls returns the combined number of describe and create calls.
func (f *Fake) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.DescribeCalls) + len(f.CreateCalls)
}

type existsSentinel struct{}

func (existsSentinel) Error() string { return "resource already present" }

var errExists = existsSentinel{}
