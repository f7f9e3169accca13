package drag

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// DefaultHysteresisMargin is how far (in points) the cursor must clear a
// window edge before the outside-all-windows flag flips. Without it the
// flag flickers while the cursor rides an edge.
const DefaultHysteresisMargin = 2.0

// CrossWindowCoordinator tracks the screen-space cursor during a drag,
// resolves which visible window contains it, and drives the floating drag
// preview. The preview lives outside any single window's view tree, so the
// drag visual survives cursor movement across window boundaries.
type CrossWindowCoordinator struct {
	mu      sync.Mutex
	session *Session
	windows port.WindowEnumerator
	preview port.PreviewSurface
	logger  zerolog.Logger
	margin  float64

	current *port.WindowInfo
	outside bool
}

// NewCrossWindowCoordinator creates a coordinator. A non-positive margin
// falls back to DefaultHysteresisMargin.
func NewCrossWindowCoordinator(session *Session, windows port.WindowEnumerator, preview port.PreviewSurface, margin float64, logger zerolog.Logger) *CrossWindowCoordinator {
	if margin <= 0 {
		margin = DefaultHysteresisMargin
	}
	c := &CrossWindowCoordinator{
		session: session,
		windows: windows,
		preview: preview,
		logger:  logger.With().Str("component", "cross-window-coordinator").Logger(),
		margin:  margin,
	}
	session.OnCancel(c.hidePreview)
	return c
}

// DragBegan shows the floating preview for the dragged tab.
func (c *CrossWindowCoordinator) DragBegan(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
	c.outside = false
	if c.preview != nil {
		c.preview.Show(title)
	}
}

// DragEnded hides the preview after a commit or release.
func (c *CrossWindowCoordinator) DragEnded() {
	c.hidePreview()
}

// CurrentWindow returns the window currently containing the cursor.
func (c *CrossWindowCoordinator) CurrentWindow() (port.WindowInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return port.WindowInfo{}, false
	}
	return *c.current, true
}

// UpdatePointer recomputes window containment for a screen-space cursor
// position and forwards the result to the session. Containment flips only
// when entry or exit is unambiguous (beyond the hysteresis margin), so the
// outside flag does not flicker at window edges.
func (c *CrossWindowCoordinator) UpdatePointer(screen geometry.Point) {
	if !c.session.IsDragging() || !screen.IsFinite() {
		return
	}

	c.mu.Lock()
	if c.preview != nil {
		c.preview.MoveTo(screen)
	}

	visible := c.windows.VisibleWindows()
	c.resolveContainment(screen, visible)

	local := screen
	outside := c.outside
	if c.current != nil {
		local = geometry.Point{X: screen.X - c.current.Frame.X, Y: screen.Y - c.current.Frame.Y}
	}
	c.mu.Unlock()

	c.session.SetCursor(screen, local, outside)
}

// resolveContainment updates current/outside with hysteresis. Caller holds
// the mutex.
func (c *CrossWindowCoordinator) resolveContainment(screen geometry.Point, visible []port.WindowInfo) {
	// Sticky case: still within the expanded frame of the current window.
	if c.current != nil {
		for i := range visible {
			if visible[i].ID == c.current.ID {
				if visible[i].Frame.Inset(-c.margin).Contains(screen) {
					c.current = &visible[i]
					c.outside = false
					return
				}
				break
			}
		}
	}

	// Unambiguous entry: inside some window's inset frame.
	for i := range visible {
		if visible[i].Frame.Inset(c.margin).Contains(screen) {
			if c.current == nil || c.current.ID != visible[i].ID {
				c.logger.Debug().Str("window_id", string(visible[i].ID)).Msg("cursor entered window")
			}
			c.current = &visible[i]
			c.outside = false
			return
		}
	}

	// Ambiguous band: inside some raw frame but not past the margin.
	// Keep the previous state rather than flapping.
	for i := range visible {
		if visible[i].Frame.Contains(screen) {
			return
		}
	}

	if !c.outside {
		c.logger.Debug().Msg("cursor left all windows")
	}
	c.current = nil
	c.outside = true
}

// ReleaseOutside handles a pointer release while outside every window:
// cancel semantics apply and no DragOperation is produced.
func (c *CrossWindowCoordinator) ReleaseOutside() {
	c.mu.Lock()
	outside := c.outside
	c.mu.Unlock()

	if outside && c.session.IsDragging() {
		c.session.Cancel()
	}
	c.hidePreview()
}

func (c *CrossWindowCoordinator) hidePreview() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
	c.outside = false
	if c.preview != nil {
		c.preview.Hide()
	}
}
