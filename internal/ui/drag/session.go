package drag

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// SessionState is the lifecycle state of the drag session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateDragging
)

// IndexUpdate is the result of one insertion-index resolution: the resolved
// index, the zone-local indicator frame to render, and whether the index
// actually changed since the last update (feedback cues fire on changes
// only, not on every pointer tick).
type IndexUpdate struct {
	Index     int
	Indicator geometry.Rect
	Changed   bool
	OK        bool
}

// Session is the single mutable state of one in-progress drag. It is
// exclusively owned here; every other component reads or requests mutation
// through this API and never holds a second writable copy.
//
// All mutators are silent no-ops while idle: pointer events can trail in
// after a session has ended, and "no session" is a valid inert state, not
// an error.
type Session struct {
	mu       sync.Mutex
	logger   zerolog.Logger
	registry *ZoneRegistry
	feedback port.FeedbackSink

	state       SessionState
	payload     entity.DragPayload
	source      entity.Container
	sourceZone  ZoneID
	sourceIndex int

	activeZone     *ZoneID
	indices        map[ZoneID]int
	cursorScreen   geometry.Point
	cursorWindow   geometry.Point
	outsideWindows bool

	cancelObservers []func()
}

// NewSession creates an idle session bound to the zone registry.
func NewSession(registry *ZoneRegistry, feedback port.FeedbackSink, logger zerolog.Logger) *Session {
	return &Session{
		logger:   logger.With().Str("component", "drag-session").Logger(),
		registry: registry,
		feedback: feedback,
		indices:  make(map[ZoneID]int),
	}
}

// OnCancel registers an observer invoked whenever the session is cancelled,
// for listeners that must revert optimistic UI state.
func (s *Session) OnCancel(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelObservers = append(s.cancelObservers, fn)
}

// Begin opens a new session. A call while a session is already open is a
// silent no-op; initiation races are arbitrated by the Lock, not here.
func (s *Session) Begin(payload entity.DragPayload, source entity.Container, sourceZone ZoneID, sourceIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDragging {
		s.logger.Debug().Str("tab_id", string(payload.TabID)).Msg("begin ignored: session already open")
		return
	}

	s.state = StateDragging
	s.payload = payload
	s.source = source
	s.sourceZone = sourceZone
	s.sourceIndex = sourceIndex
	s.activeZone = nil
	s.indices = make(map[ZoneID]int)
	s.outsideWindows = false

	s.logger.Debug().
		Str("tab_id", string(payload.TabID)).
		Str("source", source.String()).
		Int("source_index", sourceIndex).
		Msg("drag began")
	s.emit(port.FeedbackDragBegan)
}

// IsDragging reports whether a session is open.
func (s *Session) IsDragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateDragging
}

// Payload returns the dragged tab's payload.
func (s *Session) Payload() entity.DragPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payload
}

// SourceZone returns the zone the drag started from.
func (s *Session) SourceZone() ZoneID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceZone
}

// SourceIndex returns the dragged tab's index in its source container.
func (s *Session) SourceIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceIndex
}

// ActiveZone returns the zone currently under the cursor, if any.
func (s *Session) ActiveZone() (ZoneID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeZone == nil {
		return "", false
	}
	return *s.activeZone, true
}

// InsertionIndex returns the stored insertion index for a zone.
func (s *Session) InsertionIndex(zone ZoneID) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.indices[zone]
	return idx, ok
}

// OutsideWindows reports whether the cursor is outside every visible window.
func (s *Session) OutsideWindows() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outsideWindows
}

// CursorScreen returns the last known screen-space cursor position.
func (s *Session) CursorScreen() geometry.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorScreen
}

// SetCursor records the cursor position and the outside-all-windows flag.
// The cross-window coordinator resolves containment (with hysteresis) and
// feeds unambiguous flips only; a flip to outside clears the active zone,
// since no zone in any window should appear targeted.
func (s *Session) SetCursor(screen, windowLocal geometry.Point, outside bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDragging || !screen.IsFinite() {
		return
	}

	s.cursorScreen = screen
	s.cursorWindow = windowLocal

	if outside == s.outsideWindows {
		return
	}
	s.outsideWindows = outside
	if outside {
		s.activeZone = nil
		s.logger.Debug().Msg("cursor left all windows")
		s.emit(port.FeedbackLeftAllWindows)
	} else {
		s.logger.Debug().Msg("cursor entered a window")
		s.emit(port.FeedbackEnteredWindow)
	}
}

// EnterZone marks a zone as active. Entering clears that zone's previous
// insertion index so a stale value never renders before the first resolve.
func (s *Session) EnterZone(zone ZoneID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDragging {
		return
	}
	if s.activeZone != nil && *s.activeZone == zone {
		return
	}
	z := zone
	s.activeZone = &z
	delete(s.indices, zone)
	s.logger.Debug().Str("zone_id", string(zone)).Msg("entered zone")
	s.emit(port.FeedbackZoneEntered)
}

// ExitZone clears the active zone and that zone's stored index only.
func (s *Session) ExitZone(zone ZoneID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDragging {
		return
	}
	delete(s.indices, zone)
	if s.activeZone != nil && *s.activeZone == zone {
		s.activeZone = nil
	}
}

// UpdateInsertionIndex resolves the insertion index for a zone-local pointer
// position via the boundary calculator, clamps it per the container rule,
// and stores it. The update is rejected (OK=false) for unknown zones,
// non-finite points, or while idle. An empty zone always resolves index 0.
func (s *Session) UpdateInsertionIndex(zone ZoneID, local geometry.Point) IndexUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDragging || !local.IsFinite() {
		return IndexUpdate{}
	}
	z, ok := s.registry.Zone(zone)
	if !ok {
		s.logger.Debug().Str("zone_id", string(zone)).Msg("index update for unknown zone")
		return IndexUpdate{}
	}

	sameContainer := zone == s.sourceZone
	idx, indicator, resolved := resolveZoneIndex(z, local, sameContainer)
	if !resolved {
		return IndexUpdate{}
	}

	prev, had := s.indices[zone]
	changed := !had || prev != idx
	s.indices[zone] = idx
	if changed {
		s.emit(port.FeedbackInsertionChanged)
	}
	return IndexUpdate{Index: idx, Indicator: indicator, Changed: changed, OK: true}
}

// resolveZoneIndex runs the boundary calculator for one zone. The indicator
// rect is zone-local; adapters convert it to the overlay's space.
func resolveZoneIndex(z Zone, local geometry.Point, sameContainer bool) (int, geometry.Rect, bool) {
	frames := z.ItemFrames()
	if len(frames) == 0 {
		// Empty zone: insertion index 0, no boundary-derived indicator.
		// Adapters substitute their fallback frame.
		return 0, geometry.Rect{}, true
	}

	if z.IsGrid() {
		boundaries := geometry.GridBoundaries(frames, *z.Columns, z.Frame.W)
		idx := geometry.ResolveGridIndex(local, boundaries)
		if idx < 0 {
			return 0, geometry.Rect{}, true
		}
		clamped := geometry.ClampInsertionIndex(idx, z.ItemCount, sameContainer)
		indicator := boundaries[0].Indicator
		for _, b := range boundaries {
			if b.Index == clamped {
				indicator = b.Indicator
				break
			}
		}
		return clamped, indicator, true
	}

	offsets := geometry.ListBoundaries(frames)
	idx := geometry.ResolveListIndex(local.Y, offsets)
	if idx < 0 {
		return 0, geometry.Rect{}, true
	}
	clamped := geometry.ClampInsertionIndex(idx, z.ItemCount, sameContainer)
	indicator := geometry.Rect{
		X: 0,
		Y: offsets[clamped] - geometry.IndicatorThickness/2,
		W: z.Frame.W,
		H: geometry.IndicatorThickness,
	}
	return clamped, indicator, true
}

// CompleteDrop stages a cross-container move into targetZone at targetIndex.
// It returns nil when the target matches the source zone (the caller should
// use CompleteReorder) or when the session is idle. The session is always
// cleared afterward: a drop onto the same place is a legal no-op release.
func (s *Session) CompleteDrop(targetZone ZoneID, targetIndex int) *entity.DragOperation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDragging {
		return nil
	}

	var op *entity.DragOperation
	if targetZone != s.sourceZone && targetIndex >= 0 {
		if z, ok := s.registry.Zone(targetZone); ok {
			op = &entity.DragOperation{
				TabID:       s.payload.TabID,
				Source:      s.source,
				SourceIndex: s.sourceIndex,
				Target:      z.Container,
				TargetIndex: targetIndex,
				GroupID:     z.Container.GroupingID(),
			}
			s.logger.Debug().Str("op", op.String()).Msg("staged cross-container move")
		} else {
			s.logger.Debug().Str("zone_id", string(targetZone)).Msg("drop on unknown zone ignored")
		}
	}

	s.clearLocked()
	return op
}

// CompleteReorder stages a same-container reorder when the stored insertion
// index for the source zone differs from the source index. The session is
// always cleared afterward.
func (s *Session) CompleteReorder() *entity.DragOperation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDragging {
		return nil
	}

	var op *entity.DragOperation
	if idx, ok := s.indices[s.sourceZone]; ok && idx != s.sourceIndex && idx >= 0 {
		op = &entity.DragOperation{
			TabID:       s.payload.TabID,
			Source:      s.source,
			SourceIndex: s.sourceIndex,
			Target:      s.source,
			TargetIndex: idx,
			GroupID:     s.source.GroupingID(),
		}
		s.logger.Debug().Str("op", op.String()).Msg("staged reorder")
	}

	s.clearLocked()
	return op
}

// Cancel clears the session unconditionally and notifies cancel observers.
// Cancelling an idle session is a no-op.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.state != StateDragging {
		s.mu.Unlock()
		return
	}
	observers := make([]func(), len(s.cancelObservers))
	copy(observers, s.cancelObservers)
	s.logger.Debug().Str("tab_id", string(s.payload.TabID)).Msg("drag cancelled")
	s.clearLocked()
	s.emit(port.FeedbackDragCancelled)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// clearLocked resets the session to idle. Caller holds the mutex.
func (s *Session) clearLocked() {
	s.state = StateIdle
	s.payload = entity.DragPayload{}
	s.source = entity.Container{}
	s.sourceZone = ""
	s.sourceIndex = 0
	s.activeZone = nil
	s.indices = make(map[ZoneID]int)
	s.outsideWindows = false
}

func (s *Session) emit(event port.FeedbackEvent) {
	if s.feedback != nil {
		s.feedback.Emit(event)
	}
}
