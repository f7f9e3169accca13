package drag

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// DefaultDragThreshold is the pointer displacement (in points) the gesture
// path requires before it treats a press as a drag rather than a click.
const DefaultDragThreshold = 4.0

// SourceItem describes one draggable item to the initiation paths. The
// callbacks are re-evaluated at initiation time because an item's index and
// bounds change as its container re-renders.
type SourceItem struct {
	Zone      ZoneID
	Container entity.Container
	Payload   func() entity.DragPayload
	Index     func() int
	Bounds    func() geometry.Rect // Window-space bounds, gesture path only
}

// PasteboardItem is the payload written to the OS drag pasteboard by the
// item-provider path: the bare identifier for cross-adapter correlation
// plus the typed JSON envelope for same-process delivery.
type PasteboardItem struct {
	ID       string
	Envelope string
}

// ItemProviderSource is the native drag initiation path: the platform's
// item-provider callback asks it to begin a drag, and it reports whether
// the lock was won.
type ItemProviderSource struct {
	mu      sync.Mutex
	lock    *Lock
	session *Session
	logger  zerolog.Logger
	item    SourceItem
	token   OwnerToken
}

// NewItemProviderSource binds one draggable item to the native drag path.
func NewItemProviderSource(lock *Lock, session *Session, item SourceItem, logger zerolog.Logger) *ItemProviderSource {
	return &ItemProviderSource{
		lock:    lock,
		session: session,
		logger:  logger.With().Str("component", "item-provider-source").Logger(),
		item:    item,
	}
}

// DragBegin attempts to start a drag from the platform's drag-start
// callback. On a lost lock race it returns ok=false and the caller yields a
// no-op drag. On success the session is open and the pasteboard payload is
// ready to hand to the OS.
func (s *ItemProviderSource) DragBegin() (PasteboardItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := NewOwnerToken()
	if !s.lock.TryAcquire(token) {
		s.logger.Debug().Str("zone_id", string(s.item.Zone)).Msg("drag begin lost lock race")
		return PasteboardItem{}, false
	}
	s.token = token

	payload := s.item.Payload()
	s.session.Begin(payload, s.item.Container, s.item.Zone, s.item.Index())

	envelope, err := payload.EncodeEnvelope()
	if err != nil {
		// The bare identifier still correlates the drop; log and continue.
		s.logger.Warn().Err(err).Msg("payload envelope encoding failed")
	}
	return PasteboardItem{ID: payload.EncodePasteboard(), Envelope: envelope}, true
}

// DragEnded releases the lock on every terminal event, including rejected
// drops, and cancels a session the drop path never closed.
func (s *ItemProviderSource) DragEnded(accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return
	}
	if !accepted && s.session.IsDragging() {
		s.session.Cancel()
	}
	s.lock.Release(s.token)
	s.token = ""
}

// PointerMonitor is the low-level gesture initiation path: a single global
// monitor shared by every drag source (N sources never install N monitors).
// It watches for a press inside a registered source's bounds, then starts
// the drag once movement crosses the threshold. Below-threshold events pass
// through untouched so ordinary clicks are unaffected.
type PointerMonitor struct {
	mu        sync.Mutex
	lock      *Lock
	session   *Session
	logger    zerolog.Logger
	threshold float64

	sources []SourceItem

	pressed    bool
	pressPoint geometry.Point
	candidate  *SourceItem
	token      OwnerToken
	started    bool
}

// NewPointerMonitor creates the shared monitor. A non-positive threshold
// falls back to DefaultDragThreshold.
func NewPointerMonitor(lock *Lock, session *Session, threshold float64, logger zerolog.Logger) *PointerMonitor {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &PointerMonitor{
		lock:      lock,
		session:   session,
		logger:    logger.With().Str("component", "pointer-monitor").Logger(),
		threshold: threshold,
	}
}

// AddSource registers a draggable item's bounds with the monitor.
func (m *PointerMonitor) AddSource(item SourceItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, item)
}

// SetSources replaces the full source registration, for hosts that rebuild
// it after every layout or commit. An in-flight gesture keeps its candidate.
func (m *PointerMonitor) SetSources(items []SourceItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = items
}

// RemoveZoneSources drops every source registered for a zone, for when a
// container unmounts mid-session.
func (m *PointerMonitor) RemoveZoneSources(zone ZoneID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.sources[:0]
	for _, s := range m.sources {
		if s.Zone != zone {
			kept = append(kept, s)
		}
	}
	m.sources = kept
}

// PointerDown arms the monitor when the press lands inside a registered
// source's bounds.
func (m *PointerMonitor) PointerDown(window geometry.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !window.IsFinite() {
		return
	}
	m.pressed = true
	m.pressPoint = window
	m.candidate = nil
	for i := range m.sources {
		if m.sources[i].Bounds != nil && m.sources[i].Bounds().Contains(window) {
			m.candidate = &m.sources[i]
			break
		}
	}
}

// PointerMoved reports whether the monitor consumed the event. It begins
// the drag once displacement from the press point crosses the threshold and
// the lock is won; a lost race abandons the candidate so the other
// initiation path proceeds alone.
func (m *PointerMonitor) PointerMoved(window geometry.Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.pressed || m.candidate == nil || !window.IsFinite() {
		return m.started
	}
	if m.started {
		return true
	}

	dx := window.X - m.pressPoint.X
	dy := window.Y - m.pressPoint.Y
	if dx*dx+dy*dy < m.threshold*m.threshold {
		return false
	}

	token := NewOwnerToken()
	if !m.lock.TryAcquire(token) {
		m.logger.Debug().Str("zone_id", string(m.candidate.Zone)).Msg("gesture lost lock race")
		m.candidate = nil
		return false
	}
	m.token = token
	m.started = true

	item := m.candidate
	m.session.Begin(item.Payload(), item.Container, item.Zone, item.Index())
	return true
}

// Dragging reports whether the gesture path currently owns a drag.
func (m *PointerMonitor) Dragging() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

// PointerUp finishes the gesture. The host routes the release through the
// active target adapter first (which commits the drop); whatever session is
// still open here was never committed and is cancelled. The lock is always
// released.
func (m *PointerMonitor) PointerUp() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started && m.session.IsDragging() {
		m.session.Cancel()
	}
	if m.token != "" {
		m.lock.Release(m.token)
		m.token = ""
	}
	m.pressed = false
	m.candidate = nil
	m.started = false
}
