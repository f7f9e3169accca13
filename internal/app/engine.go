// Package app wires the drag engine's components into a runnable whole for
// the front ends: zone registration, pointer routing between the monitor,
// target adapters, and the cross-window coordinator, and source rebuilding
// after every committed move.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/application/usecase"
	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
	"github.com/bnema/tabdrag/internal/domain/repository"
	"github.com/bnema/tabdrag/internal/ui/drag"
)

// Options configures the engine wiring.
type Options struct {
	Threshold        float64
	HysteresisMargin float64
	Feedback         port.FeedbackSink
	History          repository.OperationHistoryRepository
	Preview          port.PreviewSurface
	Logger           zerolog.Logger
}

// Engine owns one board plus the full drag stack over it. All pointer
// traffic from the host flows through PointerDown/PointerMoved/PointerUp in
// screen coordinates; the engine resolves windows and zone-local spaces.
type Engine struct {
	mu         sync.Mutex
	baseLogger zerolog.Logger
	logger     zerolog.Logger

	board       *entity.Board
	registry    *drag.ZoneRegistry
	lock        *drag.Lock
	session     *drag.Session
	monitor     *drag.PointerMonitor
	emitter     *drag.CommitEmitter
	coordinator *drag.CrossWindowCoordinator
	windows     *StaticWindowEnumerator
	overlay     *drag.IndicatorOverlay

	adapters  map[drag.ZoneID]*drag.TargetAdapter
	zoneOrder []drag.ZoneID

	active     drag.ZoneID
	hasActive  bool
	previewing bool

	applied []entity.DragOperation
}

// NewEngine wires a complete drag stack over the board.
func NewEngine(board *entity.Board, opts Options) *Engine {
	registry := drag.NewZoneRegistry()
	session := drag.NewSession(registry, opts.Feedback, opts.Logger)
	lock := drag.NewLock()
	mover := usecase.NewApplyDragOperationUseCase(board)

	e := &Engine{
		baseLogger: opts.Logger,
		logger:     opts.Logger.With().Str("component", "engine").Logger(),
		board:      board,
		registry:   registry,
		lock:       lock,
		session:    session,
		monitor:    drag.NewPointerMonitor(lock, session, opts.Threshold, opts.Logger),
		emitter:    drag.NewCommitEmitter(mover, opts.Feedback, opts.History, opts.Logger),
		windows:    NewStaticWindowEnumerator(),
		overlay:    drag.NewIndicatorOverlay(),
		adapters:   make(map[drag.ZoneID]*drag.TargetAdapter),
	}
	e.coordinator = drag.NewCrossWindowCoordinator(session, e.windows, opts.Preview, opts.HysteresisMargin, opts.Logger)
	return e
}

// Board returns the engine's board.
func (e *Engine) Board() *entity.Board {
	return e.board
}

// Session exposes the drag session for read access.
func (e *Engine) Session() *drag.Session {
	return e.session
}

// Registry exposes the zone registry for render-layer geometry pushes.
func (e *Engine) Registry() *drag.ZoneRegistry {
	return e.registry
}

// Overlay returns the shared insertion-indicator overlay.
func (e *Engine) Overlay() *drag.IndicatorOverlay {
	return e.overlay
}

// Applied returns every operation committed so far, in order.
func (e *Engine) Applied() []entity.DragOperation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]entity.DragOperation(nil), e.applied...)
}

// SetWindows pushes the visible window list for cross-window resolution.
func (e *Engine) SetWindows(windows []port.WindowInfo) {
	e.windows.SetWindows(windows)
}

// AddZone registers a drop zone and builds its target adapter. columns is
// nil for linear lists. The zone's item count is taken from the board.
func (e *Engine) AddZone(id drag.ZoneID, container entity.Container, frame geometry.Rect, cell geometry.Size, spacing float64, columns *int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.registry.RegisterZone(id, container)
	e.registry.RegisterFrame(id, frame)
	e.registry.RegisterGeometry(id, cell, spacing, e.board.Len(container), columns)

	e.adapters[id] = drag.NewTargetAdapter(id, e.session, e.registry, e.emitter, drag.TargetConfig{
		Indicator:     e.overlay,
		FallbackFrame: e.fallbackFrame(id),
		// Indicator frames stay zone-local; the render layer offsets by the
		// zone frame when drawing.
	}, e.baseLogger)
	e.zoneOrder = append(e.zoneOrder, id)

	e.rebuildSourcesLocked()
}

// SetZoneFrame updates a zone's window-space frame on layout changes.
func (e *Engine) SetZoneFrame(id drag.ZoneID, frame geometry.Rect) {
	e.registry.RegisterFrame(id, frame)
}

// fallbackFrame returns the empty-zone indicator position: a thin strip a
// fixed fraction down the zone's own height.
func (e *Engine) fallbackFrame(id drag.ZoneID) func() geometry.Rect {
	return func() geometry.Rect {
		z, ok := e.registry.Zone(id)
		if !ok {
			return geometry.Rect{}
		}
		return geometry.Rect{
			X: 0,
			Y: z.Frame.H*0.1 - geometry.IndicatorThickness/2,
			W: z.Frame.W,
			H: geometry.IndicatorThickness,
		}
	}
}

// ItemProvider builds the native-path drag source for one tab, for hosts
// with OS-level drag and drop.
func (e *Engine) ItemProvider(zone drag.ZoneID, tabID entity.TabID) *drag.ItemProviderSource {
	item, ok := e.sourceItemFor(zone, tabID)
	if !ok {
		return nil
	}
	return drag.NewItemProviderSource(e.lock, e.session, item, e.baseLogger)
}

// PointerDown feeds a press into the gesture initiation path.
func (e *Engine) PointerDown(screen geometry.Point) {
	e.monitor.PointerDown(e.toPrimaryWindow(screen))
}

// PointerMoved feeds pointer movement through the initiation path, the
// cross-window coordinator, and the active target adapter.
func (e *Engine) PointerMoved(screen geometry.Point) {
	window := e.toPrimaryWindow(screen)
	e.monitor.PointerMoved(window)
	e.coordinator.UpdatePointer(screen)

	if !e.session.IsDragging() {
		return
	}
	e.startPreviewOnce()
	e.routeMotion(window)
}

// PointerUp completes the gesture: the release is routed through the zone
// under the cursor (committing a drop or reorder), a release outside every
// window cancels, and the lock is always released.
func (e *Engine) PointerUp(ctx context.Context, screen geometry.Point) *entity.DragOperation {
	window := e.toPrimaryWindow(screen)

	var op *entity.DragOperation
	if e.session.IsDragging() {
		if e.session.OutsideWindows() {
			e.coordinator.ReleaseOutside()
		} else if zone, ok := e.registry.HitTest(window); ok {
			if adapter := e.adapterFor(zone); adapter != nil {
				if z, found := e.registry.Zone(zone); found {
					dropped, err := adapter.Drop(ctx, z.ToLocal(window))
					if err != nil {
						e.logger.Warn().Err(err).Msg("drop failed to apply")
					}
					op = dropped
				}
			}
		}
	}

	e.monitor.PointerUp()
	e.coordinator.DragEnded()
	e.overlay.ClearIndicator()

	e.mu.Lock()
	e.active = ""
	e.hasActive = false
	e.previewing = false
	if op != nil {
		e.applied = append(e.applied, *op)
	}
	e.mu.Unlock()

	if op != nil {
		e.SyncGeometry()
	}
	return op
}

// CancelDrag aborts any in-progress drag, for escape-key handling.
func (e *Engine) CancelDrag() {
	e.session.Cancel()
	e.monitor.PointerUp()
	e.coordinator.DragEnded()
	e.overlay.ClearIndicator()
	e.mu.Lock()
	e.active = ""
	e.hasActive = false
	e.previewing = false
	e.mu.Unlock()
}

// SyncGeometry refreshes every zone's item count from the board and
// rebuilds the gesture sources. Hosts call it after external board changes;
// the engine calls it after each commit.
func (e *Engine) SyncGeometry() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, id := range e.zoneOrder {
		z, ok := e.registry.Zone(id)
		if !ok {
			continue
		}
		e.registry.RegisterGeometry(id, z.CellSize, z.Spacing, e.board.Len(z.Container), z.Columns)
	}
	e.rebuildSourcesLocked()
}

// routeMotion delivers enter/exit/move to adapters based on hit testing.
func (e *Engine) routeMotion(window geometry.Point) {
	zone, hit := e.registry.HitTest(window)

	e.mu.Lock()
	prev, hadPrev := e.active, e.hasActive
	if hit {
		e.active, e.hasActive = zone, true
	} else {
		e.active, e.hasActive = "", false
	}
	e.mu.Unlock()

	if hadPrev && (!hit || prev != zone) {
		if adapter := e.adapterFor(prev); adapter != nil {
			adapter.PointerExited()
		}
	}
	if !hit {
		return
	}

	adapter := e.adapterFor(zone)
	z, found := e.registry.Zone(zone)
	if adapter == nil || !found {
		return
	}
	local := z.ToLocal(window)
	if !hadPrev || prev != zone {
		adapter.PointerEntered(local)
	} else {
		adapter.PointerMoved(local)
	}
}

func (e *Engine) startPreviewOnce() {
	e.mu.Lock()
	start := !e.previewing
	e.previewing = true
	e.mu.Unlock()
	if start {
		e.coordinator.DragBegan(e.session.Payload().Title)
	}
}

func (e *Engine) adapterFor(zone drag.ZoneID) *drag.TargetAdapter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.adapters[zone]
}

// toPrimaryWindow converts screen coordinates into the primary (first)
// window's space. With no windows registered the spaces coincide.
func (e *Engine) toPrimaryWindow(screen geometry.Point) geometry.Point {
	windows := e.windows.VisibleWindows()
	if len(windows) == 0 {
		return screen
	}
	return geometry.Point{X: screen.X - windows[0].Frame.X, Y: screen.Y - windows[0].Frame.Y}
}

// sourceItemFor builds a SourceItem with live index and bounds lookups, so
// registrations stay correct as the board mutates under them.
func (e *Engine) sourceItemFor(zone drag.ZoneID, tabID entity.TabID) (drag.SourceItem, bool) {
	z, ok := e.registry.Zone(zone)
	if !ok {
		return drag.SourceItem{}, false
	}
	container := z.Container

	var tab *entity.Tab
	for _, t := range e.board.Tabs(container) {
		if t.ID == tabID {
			tab = t
			break
		}
	}
	if tab == nil {
		return drag.SourceItem{}, false
	}

	indexOf := func() int {
		for i, t := range e.board.Tabs(container) {
			if t.ID == tab.ID {
				return i
			}
		}
		return -1
	}

	return drag.SourceItem{
		Zone:      zone,
		Container: container,
		Payload:   func() entity.DragPayload { return tab.Payload() },
		Index:     indexOf,
		Bounds: func() geometry.Rect {
			zs, found := e.registry.Zone(zone)
			if !found {
				return geometry.Rect{}
			}
			frames := zs.ItemFrames()
			idx := indexOf()
			if idx < 0 || idx >= len(frames) {
				return geometry.Rect{}
			}
			return zs.ToWindow(frames[idx])
		},
	}, true
}

// rebuildSourcesLocked re-registers every tab of every zone with the
// pointer monitor. Caller holds e.mu.
func (e *Engine) rebuildSourcesLocked() {
	var items []drag.SourceItem
	for _, id := range e.zoneOrder {
		z, ok := e.registry.Zone(id)
		if !ok {
			continue
		}
		for _, tab := range e.board.Tabs(z.Container) {
			if item, found := e.sourceItemFor(id, tab.ID); found {
				items = append(items, item)
			}
		}
	}
	e.monitor.SetSources(items)
}
