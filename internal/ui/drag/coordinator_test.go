package drag

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

type stubWindows struct {
	windows []port.WindowInfo
}

func (s *stubWindows) VisibleWindows() []port.WindowInfo {
	return s.windows
}

type stubPreview struct {
	shown   bool
	hidden  bool
	lastPos geometry.Point
}

func (p *stubPreview) Show(string)               { p.shown = true; p.hidden = false }
func (p *stubPreview) MoveTo(pos geometry.Point) { p.lastPos = pos }
func (p *stubPreview) Hide()                     { p.hidden = true }

func newTestCoordinator(t *testing.T) (*CrossWindowCoordinator, *Session, *stubPreview) {
	t.Helper()
	s, _ := newTestSession(t)
	windows := &stubWindows{windows: []port.WindowInfo{
		{ID: "main", Frame: geometry.Rect{X: 0, Y: 0, W: 400, H: 300}},
		{ID: "side", Frame: geometry.Rect{X: 500, Y: 0, W: 400, H: 300}},
	}}
	preview := &stubPreview{}
	c := NewCrossWindowCoordinator(s, windows, preview, 2.0, zerolog.Nop())
	return c, s, preview
}

func TestCoordinator_TracksCurrentWindow(t *testing.T) {
	c, s, preview := newTestCoordinator(t)
	beginTestDrag(s)
	c.DragBegan("A")
	require.True(t, preview.shown)

	c.UpdatePointer(geometry.Point{X: 100, Y: 100})

	win, ok := c.CurrentWindow()
	require.True(t, ok)
	assert.Equal(t, port.WindowID("main"), win.ID)
	assert.False(t, s.OutsideWindows())
	assert.Equal(t, geometry.Point{X: 100, Y: 100}, preview.lastPos)
}

func TestCoordinator_CrossesWindows(t *testing.T) {
	c, s, _ := newTestCoordinator(t)
	beginTestDrag(s)
	c.DragBegan("A")

	c.UpdatePointer(geometry.Point{X: 100, Y: 100})
	c.UpdatePointer(geometry.Point{X: 600, Y: 100})

	win, ok := c.CurrentWindow()
	require.True(t, ok)
	assert.Equal(t, port.WindowID("side"), win.ID)
}

func TestCoordinator_HysteresisOnWindowEdge(t *testing.T) {
	c, s, _ := newTestCoordinator(t)
	beginTestDrag(s)
	c.DragBegan("A")

	c.UpdatePointer(geometry.Point{X: 100, Y: 100})
	assert.False(t, s.OutsideWindows())

	// Just past the raw edge but within the margin: the sticky expanded
	// frame keeps the window current.
	c.UpdatePointer(geometry.Point{X: 401, Y: 100})
	win, ok := c.CurrentWindow()
	require.True(t, ok)
	assert.Equal(t, port.WindowID("main"), win.ID)
	assert.False(t, s.OutsideWindows())

	// Clearly beyond the margin: the flip happens.
	c.UpdatePointer(geometry.Point{X: 450, Y: 100})
	_, ok = c.CurrentWindow()
	assert.False(t, ok)
	assert.True(t, s.OutsideWindows())
}

func TestCoordinator_EdgeBandWithoutCurrentKeepsState(t *testing.T) {
	c, s, _ := newTestCoordinator(t)
	beginTestDrag(s)
	c.DragBegan("A")

	// First report lands in the ambiguous band (inside the raw frame but
	// within the margin of the edge): no window is claimed yet, and the
	// outside flag stays at its initial false.
	c.UpdatePointer(geometry.Point{X: 399, Y: 100})
	_, ok := c.CurrentWindow()
	assert.False(t, ok)
	assert.False(t, s.OutsideWindows())
}

func TestCoordinator_ReleaseOutsideCancels(t *testing.T) {
	c, s, preview := newTestCoordinator(t)
	beginTestDrag(s)
	c.DragBegan("A")

	c.UpdatePointer(geometry.Point{X: 100, Y: 100})
	c.UpdatePointer(geometry.Point{X: 950, Y: 100})
	require.True(t, s.OutsideWindows())

	c.ReleaseOutside()
	assert.False(t, s.IsDragging(), "a release outside every window cancels the drag")
	assert.True(t, preview.hidden)
}

func TestCoordinator_ReleaseInsideDoesNotCancel(t *testing.T) {
	c, s, _ := newTestCoordinator(t)
	beginTestDrag(s)
	c.DragBegan("A")

	c.UpdatePointer(geometry.Point{X: 100, Y: 100})
	c.ReleaseOutside()

	assert.True(t, s.IsDragging(), "an inside release is the drop path's business")
}

func TestCoordinator_SessionCancelHidesPreview(t *testing.T) {
	c, s, preview := newTestCoordinator(t)
	beginTestDrag(s)
	c.DragBegan("A")
	require.True(t, preview.shown)

	s.Cancel()
	assert.True(t, preview.hidden)
	_, ok := c.CurrentWindow()
	assert.False(t, ok)
}

func TestCoordinator_IgnoresPointerWhileIdle(t *testing.T) {
	c, _, preview := newTestCoordinator(t)

	c.UpdatePointer(geometry.Point{X: 100, Y: 100})

	_, ok := c.CurrentWindow()
	assert.False(t, ok)
	assert.Equal(t, geometry.Point{}, preview.lastPos)
}
