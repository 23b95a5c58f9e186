package frogger

import (
	"slices"

	"github.com/google/uuid"
)

// Registry is the ordered set of live entities. Insertion order is both the
// render order (back to front) and the input dispatch order.
type Registry struct {
	entities []*Entity
	byID     map[uuid.UUID]*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[uuid.UUID]*Entity)}
}

// Add appends e. Adding a live entity again is a no-op.
func (r *Registry) Add(e *Entity) {
	if r.Contains(e) {
		return
	}
	r.entities = append(r.entities, e)
	r.byID[e.ID] = e
}

// Remove deletes e by identity. Removing an absent entity is a no-op.
func (r *Registry) Remove(e *Entity) {
	if !r.Contains(e) {
		return
	}
	delete(r.byID, e.ID)
	if i := slices.Index(r.entities, e); i >= 0 {
		r.entities = slices.Delete(r.entities, i, i+1)
	}
}

// Clear removes every entity.
func (r *Registry) Clear() {
	clear(r.entities)
	r.entities = r.entities[:0]
	clear(r.byID)
}

// Contains reports whether e is live.
func (r *Registry) Contains(e *Entity) bool {
	return e != nil && r.byID[e.ID] == e
}

// ContainsID reports whether an entity with the given ID is live.
func (r *Registry) ContainsID(id uuid.UUID) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup returns the live entity with the given ID.
func (r *Registry) Lookup(id uuid.UUID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// All returns a copy of the entities in order, safe to iterate while the
// registry changes.
func (r *Registry) All() []*Entity {
	return slices.Clone(r.entities)
}

// Inputs returns the input-capable entities in order.
func (r *Registry) Inputs() []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.Has(CapInput) {
			out = append(out, e)
		}
	}
	return out
}

// OfKind returns the live entities of the given kind in order.
func (r *Registry) OfKind(k Kind) []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}
