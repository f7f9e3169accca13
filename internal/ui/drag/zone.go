// Package drag implements the tab drag-and-drop reordering engine: the drag
// lock, the single drag session, per-zone drop adapters, the two drag
// initiation paths, and the cross-window coordinator. The engine consumes
// measured zone geometry pushed by the render layer and emits at most one
// DragOperation per completed drag.
package drag

import (
	"sort"
	"sync"

	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// ZoneID identifies one registered drop zone.
type ZoneID string

// Zone is the measured geometry of one drop zone: its frame in window
// coordinates plus the layout parameters needed to reconstruct per-item
// frames. Columns is set only for grid-laid-out containers.
type Zone struct {
	ID        ZoneID
	Container entity.Container
	Frame     geometry.Rect
	CellSize  geometry.Size
	Spacing   float64
	ItemCount int
	Columns   *int
}

// IsGrid reports whether the zone lays out as a 2-D grid.
func (z Zone) IsGrid() bool {
	return z.Columns != nil && *z.Columns > 0
}

// ItemFrames reconstructs the zone-local frames of every rendered cell from
// the registered cell size, spacing, and column count.
func (z Zone) ItemFrames() []geometry.Rect {
	if z.ItemCount <= 0 || z.CellSize.W <= 0 || z.CellSize.H <= 0 {
		return nil
	}

	frames := make([]geometry.Rect, 0, z.ItemCount)
	if z.IsGrid() {
		cols := *z.Columns
		for i := 0; i < z.ItemCount; i++ {
			col := i % cols
			row := i / cols
			frames = append(frames, geometry.Rect{
				X: float64(col) * (z.CellSize.W + z.Spacing),
				Y: float64(row) * (z.CellSize.H + z.Spacing),
				W: z.CellSize.W,
				H: z.CellSize.H,
			})
		}
		return frames
	}

	for i := 0; i < z.ItemCount; i++ {
		frames = append(frames, geometry.Rect{
			X: 0,
			Y: float64(i) * (z.CellSize.H + z.Spacing),
			W: z.CellSize.W,
			H: z.CellSize.H,
		})
	}
	return frames
}

// ToLocal converts a window-space point into this zone's local space.
func (z Zone) ToLocal(window geometry.Point) geometry.Point {
	return geometry.Point{X: window.X - z.Frame.X, Y: window.Y - z.Frame.Y}
}

// ToWindow converts a zone-local rectangle into window space.
func (z Zone) ToWindow(local geometry.Rect) geometry.Rect {
	return geometry.Rect{X: local.X + z.Frame.X, Y: local.Y + z.Frame.Y, W: local.W, H: local.H}
}

// ZoneRegistry tracks the measured geometry of every drop zone. The render
// layer pushes updates on every layout pass; the engine only reads. All
// methods take value snapshots so callers never hold a mutable reference.
type ZoneRegistry struct {
	mu    sync.RWMutex
	zones map[ZoneID]Zone
}

// NewZoneRegistry creates an empty registry.
func NewZoneRegistry() *ZoneRegistry {
	return &ZoneRegistry{zones: make(map[ZoneID]Zone)}
}

// RegisterZone binds a zone id to its container. Geometry arrives separately
// through RegisterFrame/RegisterGeometry.
func (r *ZoneRegistry) RegisterZone(id ZoneID, container entity.Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	z := r.zones[id]
	z.ID = id
	z.Container = container
	r.zones[id] = z
}

// RegisterFrame updates a zone's window-space frame. Non-finite frames are
// dropped; a single bad layout pass must not abort an in-progress drag.
func (r *ZoneRegistry) RegisterFrame(id ZoneID, frame geometry.Rect) {
	if !frame.IsFinite() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	z := r.zones[id]
	z.ID = id
	z.Frame = frame
	r.zones[id] = z
}

// RegisterGeometry updates a zone's layout parameters. columns is nil for
// linear lists.
func (r *ZoneRegistry) RegisterGeometry(id ZoneID, cell geometry.Size, spacing float64, itemCount int, columns *int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	z := r.zones[id]
	z.ID = id
	z.CellSize = cell
	z.Spacing = spacing
	if itemCount < 0 {
		itemCount = 0
	}
	z.ItemCount = itemCount
	z.Columns = columns
	r.zones[id] = z
}

// Remove unregisters a zone.
func (r *ZoneRegistry) Remove(id ZoneID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.zones, id)
}

// Zone returns a snapshot of one zone.
func (r *ZoneRegistry) Zone(id ZoneID) (Zone, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	z, ok := r.zones[id]
	return z, ok
}

// HitTest returns the zone containing a window-space point. Iteration order
// is by zone id so overlap resolution is deterministic.
func (r *ZoneRegistry) HitTest(window geometry.Point) (ZoneID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ZoneID, 0, len(r.zones))
	for id := range r.zones {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if r.zones[id].Frame.Contains(window) {
			return id, true
		}
	}
	return "", false
}
