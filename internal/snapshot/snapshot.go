// Package snapshot captures the on-screen geometry of a set of items at one
// instant, before a mutation invalidates it.
package snapshot

import (
	"sort"

	"github.com/llehouerou/tiles/internal/geom"
)

// Source answers geometry queries. A missing rectangle means the item is
// not mounted or not laid out.
type Source interface {
	GeometryOf(id string) (geom.Rect, bool)
}

// Snapshot is an immutable id -> rectangle mapping. The zero value is an
// empty snapshot.
type Snapshot struct {
	rects map[string]geom.Rect
}

// CaptureAll reads the geometry of every id from src in one synchronous
// pass. Ids without geometry are left out.
func CaptureAll(src Source, ids []string) Snapshot {
	rects := make(map[string]geom.Rect, len(ids))
	for _, id := range ids {
		if r, ok := src.GeometryOf(id); ok {
			rects[id] = r
		}
	}
	return Snapshot{rects: rects}
}

// Get returns the captured rectangle for id.
func (s Snapshot) Get(id string) (geom.Rect, bool) {
	r, ok := s.rects[id]
	return r, ok
}

// Len returns the number of captured items.
func (s Snapshot) Len() int {
	return len(s.rects)
}

// IDs returns the captured ids, sorted.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.rects))
	for id := range s.rects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
