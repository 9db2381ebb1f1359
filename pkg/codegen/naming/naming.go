// Package naming enforces the naming contract binding generators rely on:
// within one generation run every distinct type shape owns exactly one
// canonical name, and no two distinct shapes share a name. Generated helper
// functions are keyed by these names, so a collision that slipped through
// would silently merge the helpers of unrelated types.
package naming

import (
	"sort"
	"sync"

	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"
)

// Registry tracks the canonical names claimed during a single generation
// run. It is owned by the run that created it; nothing in this package keeps
// global state, so concurrent runs never observe each other's names.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	shapes map[string]component.Type
}

// NewRegistry returns an empty registry for a fresh generation run.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]component.Type)}
}

// Register claims name for shape. Re-registering a structurally identical
// shape under the same name succeeds any number of times; claiming a name
// that a different shape already owns fails with *CollisionError. The check
// and the insert happen under one lock, so two concurrent producers cannot
// both claim the same name for different shapes.
func (r *Registry) Register(name string, shape component.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.shapes[name]; ok {
		if component.EqualTypes(prev, shape) {
			return nil
		}
		return &CollisionError{Name: name, Owner: prev, Claimant: shape}
	}
	r.shapes[name] = shape
	return nil
}

// Lookup returns the shape that owns name, if any.
func (r *Registry) Lookup(name string) (component.Type, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shape, ok := r.shapes[name]
	return shape, ok
}

// Len returns the number of canonical names claimed so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shapes)
}

// Names returns the claimed canonical names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
