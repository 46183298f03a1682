// Package service implements the optional add-on overlays that can be
// layered onto a generated project: template fragments plus small patches to
// the environment file, the dependency manifests, and the project record.
package service

import (
	"errors"
	"fmt"
)

// ErrUnknownService indicates a service id with no registered overlay.
var ErrUnknownService = errors.New("unknown service")

// Overlay is one named add-on. Apply and Remove operate on the root of an
// already-generated project.
//
// Apply steps run in a fixed order with no cross-step rollback: edits made by
// an earlier step stay in place when a later step fails. Remove deletes only
// the overlay's fixed file manifest; environment and dependency entries added
// by Apply are left behind on purpose.
type Overlay interface {
	ID() string
	Describe() string
	Apply(projectRoot string) error
	Remove(projectRoot string) (removed bool, err error)
}

// Registry is the closed set of overlays, built once at startup.
type Registry struct {
	overlays map[string]Overlay
	order    []string
}

// NewRegistry builds a registry from the given overlays.
func NewRegistry(overlays ...Overlay) *Registry {
	r := &Registry{overlays: make(map[string]Overlay, len(overlays))}
	for _, o := range overlays {
		if _, dup := r.overlays[o.ID()]; dup {
			continue
		}
		r.overlays[o.ID()] = o
		r.order = append(r.order, o.ID())
	}
	return r
}

// DefaultRegistry returns the registry of all built-in overlays.
func DefaultRegistry() *Registry {
	return NewRegistry(NewVercel(), NewGoogleOAuth())
}

// Lookup resolves a service id.
func (r *Registry) Lookup(id string) (Overlay, error) {
	o, ok := r.overlays[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, id)
	}
	return o, nil
}

// List returns all overlays in registration order. An empty registry yields
// an empty list, not an error.
func (r *Registry) List() []Overlay {
	out := make([]Overlay, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.overlays[id])
	}
	return out
}
