package drag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

func TestZoneRegistry_RegisterAndHitTest(t *testing.T) {
	reg := NewZoneRegistry()
	reg.RegisterZone("pinned", entity.SpacePinned("space-1"))
	reg.RegisterFrame("pinned", geometry.Rect{X: 0, Y: 0, W: 100, H: 200})
	reg.RegisterZone("regular", entity.SpaceRegular("space-1"))
	reg.RegisterFrame("regular", geometry.Rect{X: 0, Y: 200, W: 100, H: 200})

	id, ok := reg.HitTest(geometry.Point{X: 50, Y: 250})
	require.True(t, ok)
	assert.Equal(t, ZoneID("regular"), id)

	_, ok = reg.HitTest(geometry.Point{X: 500, Y: 50})
	assert.False(t, ok)
}

func TestZoneRegistry_HitTestOverlapIsDeterministic(t *testing.T) {
	reg := NewZoneRegistry()
	frame := geometry.Rect{X: 0, Y: 0, W: 100, H: 100}
	reg.RegisterFrame("b-zone", frame)
	reg.RegisterFrame("a-zone", frame)

	id, ok := reg.HitTest(geometry.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.Equal(t, ZoneID("a-zone"), id, "overlaps resolve by zone id order")
}

func TestZoneRegistry_RejectsNonFiniteFrame(t *testing.T) {
	reg := NewZoneRegistry()
	reg.RegisterFrame("z", geometry.Rect{X: 0, Y: 0, W: 100, H: 100})
	reg.RegisterFrame("z", geometry.Rect{X: math.NaN(), Y: 0, W: 100, H: 100})

	z, ok := reg.Zone("z")
	require.True(t, ok)
	assert.Equal(t, 100.0, z.Frame.W, "a bad layout pass keeps the last good frame")
}

func TestZoneRegistry_Remove(t *testing.T) {
	reg := NewZoneRegistry()
	reg.RegisterFrame("z", geometry.Rect{W: 10, H: 10})
	reg.Remove("z")

	_, ok := reg.Zone("z")
	assert.False(t, ok)
}

func TestZone_ItemFramesList(t *testing.T) {
	z := Zone{
		CellSize:  geometry.Size{W: 100, H: 30},
		Spacing:   4,
		ItemCount: 3,
	}

	frames := z.ItemFrames()
	require.Len(t, frames, 3)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: 100, H: 30}, frames[0])
	assert.Equal(t, geometry.Rect{X: 0, Y: 34, W: 100, H: 30}, frames[1])
	assert.Equal(t, geometry.Rect{X: 0, Y: 68, W: 100, H: 30}, frames[2])
}

func TestZone_ItemFramesGrid(t *testing.T) {
	cols := 2
	z := Zone{
		CellSize:  geometry.Size{W: 40, H: 30},
		Spacing:   8,
		ItemCount: 3,
		Columns:   &cols,
	}

	frames := z.ItemFrames()
	require.Len(t, frames, 3)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: 40, H: 30}, frames[0])
	assert.Equal(t, geometry.Rect{X: 48, Y: 0, W: 40, H: 30}, frames[1])
	assert.Equal(t, geometry.Rect{X: 0, Y: 38, W: 40, H: 30}, frames[2], "the third cell wraps to the next row")
}

func TestZone_CoordinateConversion(t *testing.T) {
	z := Zone{Frame: geometry.Rect{X: 10, Y: 20, W: 100, H: 100}}

	local := z.ToLocal(geometry.Point{X: 15, Y: 30})
	assert.Equal(t, geometry.Point{X: 5, Y: 10}, local)

	window := z.ToWindow(geometry.Rect{X: 5, Y: 10, W: 50, H: 3})
	assert.Equal(t, geometry.Rect{X: 15, Y: 30, W: 50, H: 3}, window)
}
