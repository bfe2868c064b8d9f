// Package registry maps stable item identifiers to the live render slots
// used to query their on-screen geometry.
//
// A Registry is owned by whoever owns the rendered collection and lives as
// long as the items are mounted. It is not safe for concurrent use; all
// calls are expected from the UI event loop.
package registry

import (
	"slices"

	"github.com/llehouerou/tiles/internal/geom"
)

// Slot is a handle onto a rendered item. Bounds reports false while the
// item has not been laid out.
type Slot interface {
	Bounds() (geom.Rect, bool)
}

// Registry tracks the slots of mounted items in registration order.
type Registry struct {
	slots map[string]Slot
	ids   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{slots: make(map[string]Slot)}
}

// Register mounts slot under id. Registering an id again replaces its slot
// and keeps its original registration position.
func (r *Registry) Register(id string, slot Slot) {
	if _, ok := r.slots[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.slots[id] = slot
}

// Unregister unmounts id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	if _, ok := r.slots[id]; !ok {
		return
	}
	delete(r.slots, id)
	if i := slices.Index(r.ids, id); i >= 0 {
		r.ids = slices.Delete(r.ids, i, i+1)
	}
}

// GeometryOf returns the current bounds of id. It reports false for ids
// that are not mounted or not laid out yet; callers skip those.
func (r *Registry) GeometryOf(id string) (geom.Rect, bool) {
	slot, ok := r.slots[id]
	if !ok || slot == nil {
		return geom.Rect{}, false
	}
	return slot.Bounds()
}

// Slot returns the slot registered under id.
func (r *Registry) Slot(id string) (Slot, bool) {
	slot, ok := r.slots[id]
	return slot, ok
}

// Has reports whether id is mounted.
func (r *Registry) Has(id string) bool {
	_, ok := r.slots[id]
	return ok
}

// IDs returns the mounted ids in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// Len returns the number of mounted items.
func (r *Registry) Len() int {
	return len(r.ids)
}
