package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	board := entity.NewBoard()
	regular := entity.SpaceRegular("space-1")
	board.Append(regular, entity.NewTab("a", "A", ""))
	board.Append(regular, entity.NewTab("b", "B", ""))
	board.Append(regular, entity.NewTab("c", "C", ""))
	pinned := entity.SpacePinned("space-1")
	board.Append(pinned, entity.NewTab("p", "P", ""))

	e := NewEngine(board, Options{Logger: zerolog.Nop()})
	e.SetWindows([]port.WindowInfo{{ID: "main", Frame: geometry.Rect{X: 0, Y: 0, W: 800, H: 600}}})
	e.AddZone("regular", regular, geometry.Rect{X: 0, Y: 0, W: 100, H: 200}, geometry.Size{W: 100, H: 30}, 4, nil)
	e.AddZone("pinned", pinned, geometry.Rect{X: 0, Y: 200, W: 100, H: 100}, geometry.Size{W: 100, H: 30}, 4, nil)
	return e
}

func ids(board *entity.Board, c entity.Container) []entity.TabID {
	tabs := board.Tabs(c)
	out := make([]entity.TabID, len(tabs))
	for i, tab := range tabs {
		out[i] = tab.ID
	}
	return out
}

func TestEngine_ReorderWithinZone(t *testing.T) {
	e := newTestEngine(t)
	regular := entity.SpaceRegular("space-1")

	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	require.True(t, e.Session().IsDragging(), "crossing the threshold starts the drag")

	e.PointerMoved(geometry.Point{X: 10, Y: 90})
	op := e.PointerUp(context.Background(), geometry.Point{X: 10, Y: 90})

	require.NotNil(t, op)
	assert.Equal(t, entity.TabID("a"), op.TabID)
	assert.Equal(t, 2, op.TargetIndex)
	assert.Equal(t, []entity.TabID{"b", "c", "a"}, ids(e.Board(), regular))
	assert.Len(t, e.Applied(), 1)
	assert.False(t, e.Session().IsDragging())
}

func TestEngine_MoveAcrossZones(t *testing.T) {
	e := newTestEngine(t)
	regular := entity.SpaceRegular("space-1")
	pinned := entity.SpacePinned("space-1")

	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	e.PointerMoved(geometry.Point{X: 10, Y: 250})
	op := e.PointerUp(context.Background(), geometry.Point{X: 10, Y: 250})

	require.NotNil(t, op)
	assert.Equal(t, pinned, op.Target)
	assert.Equal(t, []entity.TabID{"b", "c"}, ids(e.Board(), regular))
	assert.Equal(t, []entity.TabID{"p", "a"}, ids(e.Board(), pinned))
}

func TestEngine_ClickWithoutMovementCommitsNothing(t *testing.T) {
	e := newTestEngine(t)

	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 11, Y: 10})
	op := e.PointerUp(context.Background(), geometry.Point{X: 11, Y: 10})

	assert.Nil(t, op)
	assert.Empty(t, e.Applied())
}

func TestEngine_ReleaseOutsideWindowsCancels(t *testing.T) {
	e := newTestEngine(t)
	regular := entity.SpaceRegular("space-1")

	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	e.PointerMoved(geometry.Point{X: 900, Y: 900})
	require.True(t, e.Session().OutsideWindows())

	op := e.PointerUp(context.Background(), geometry.Point{X: 900, Y: 900})

	assert.Nil(t, op)
	assert.Equal(t, []entity.TabID{"a", "b", "c"}, ids(e.Board(), regular))
	assert.False(t, e.Session().IsDragging())
}

func TestEngine_CancelDragRestoresIdle(t *testing.T) {
	e := newTestEngine(t)
	regular := entity.SpaceRegular("space-1")

	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	e.CancelDrag()

	assert.False(t, e.Session().IsDragging())
	assert.Equal(t, []entity.TabID{"a", "b", "c"}, ids(e.Board(), regular))

	// The next gesture works: the lock was released.
	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	assert.True(t, e.Session().IsDragging())
	e.CancelDrag()
}

func TestEngine_SourcesTrackCommittedMoves(t *testing.T) {
	e := newTestEngine(t)
	regular := entity.SpaceRegular("space-1")

	// First drag: move A to the end.
	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	e.PointerMoved(geometry.Point{X: 10, Y: 90})
	require.NotNil(t, e.PointerUp(context.Background(), geometry.Point{X: 10, Y: 90}))

	// Second drag starts from the same slot, which now holds B.
	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	assert.Equal(t, entity.TabID("b"), e.Session().Payload().TabID)
	e.CancelDrag()

	assert.Equal(t, []entity.TabID{"b", "c", "a"}, ids(e.Board(), regular))
}

func TestEngine_ItemProvider(t *testing.T) {
	e := newTestEngine(t)

	src := e.ItemProvider("regular", "b")
	require.NotNil(t, src)

	item, ok := src.DragBegin()
	require.True(t, ok)
	assert.Equal(t, "b", item.ID)
	assert.True(t, e.Session().IsDragging())
	assert.Equal(t, 1, e.Session().SourceIndex())

	src.DragEnded(false)
	assert.False(t, e.Session().IsDragging())

	assert.Nil(t, e.ItemProvider("regular", "missing"))
}

func TestEngine_IndicatorPublishedDuringDrag(t *testing.T) {
	e := newTestEngine(t)

	e.PointerDown(geometry.Point{X: 10, Y: 10})
	e.PointerMoved(geometry.Point{X: 10, Y: 20})
	e.PointerMoved(geometry.Point{X: 10, Y: 90})

	frame, visible := e.Overlay().Current()
	require.True(t, visible)
	assert.Equal(t, geometry.IndicatorThickness, frame.H)
	e.CancelDrag()

	_, visible = e.Overlay().Current()
	assert.False(t, visible, "cancelling hides the indicator")
}
