package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFrames builds count cells in a 3-column grid: 40x30 cells, 8pt
// horizontal and vertical gaps, origin (10, 10).
func gridFrames(count int) []Rect {
	frames := make([]Rect, 0, count)
	for i := 0; i < count; i++ {
		col := i % 3
		row := i / 3
		frames = append(frames, Rect{
			X: 10 + float64(col)*48,
			Y: 10 + float64(row)*38,
			W: 40,
			H: 30,
		})
	}
	return frames
}

const gridWidth = 160.0

func TestGridBoundaries_IncompleteLastRow(t *testing.T) {
	// 5 cells in a 3-column grid: full first row, two cells in the second.
	bs := GridBoundaries(gridFrames(5), 3, gridWidth)

	require.Len(t, bs, 6, "N cells yield N+1 boundaries")

	assert.Equal(t, Vertical, bs[0].Orientation)
	assert.Equal(t, 6.0, bs[0].P1.X, "boundary 0 sits half a gap left of cell 0")

	assert.Equal(t, Vertical, bs[1].Orientation)
	assert.Equal(t, 54.0, bs[1].P1.X, "within-row boundary sits at the cell-edge midpoint")
	assert.Equal(t, Vertical, bs[2].Orientation)

	assert.Equal(t, Horizontal, bs[3].Orientation, "row break yields a horizontal boundary")
	assert.Equal(t, 44.0, bs[3].P1.Y)
	assert.Equal(t, 0.0, bs[3].P1.X, "row-break boundary spans the container width")
	assert.Equal(t, gridWidth, bs[3].P2.X)

	assert.Equal(t, Vertical, bs[4].Orientation)

	// The final row has room for one more cell, so the trailing boundary
	// stands after the last cell rather than below the grid.
	assert.Equal(t, Vertical, bs[5].Orientation)
	assert.Equal(t, 102.0, bs[5].P1.X)
	assert.Equal(t, 5, bs[5].Index)
}

func TestGridBoundaries_FullLastRow(t *testing.T) {
	bs := GridBoundaries(gridFrames(6), 3, gridWidth)

	require.Len(t, bs, 7)
	last := bs[6]
	assert.Equal(t, Horizontal, last.Orientation, "a full final row pushes the trailing boundary below the grid")
	assert.Equal(t, 82.0, last.P1.Y)
	assert.Equal(t, 6, last.Index)
}

func TestGridBoundaries_SingleRow(t *testing.T) {
	bs := GridBoundaries(gridFrames(2), 3, gridWidth)

	require.Len(t, bs, 3)
	for _, b := range bs {
		assert.Equal(t, Vertical, b.Orientation)
	}
}

func TestGridBoundaries_DegenerateInput(t *testing.T) {
	assert.Nil(t, GridBoundaries(nil, 3, gridWidth))
	assert.Nil(t, GridBoundaries(gridFrames(3), 0, gridWidth))

	frames := gridFrames(3)
	frames[0].W = math.Inf(1)
	assert.Nil(t, GridBoundaries(frames, 3, gridWidth))
}

func TestGridBoundaries_IndicatorFrames(t *testing.T) {
	bs := GridBoundaries(gridFrames(5), 3, gridWidth)

	v := bs[1]
	assert.Equal(t, IndicatorThickness, v.Indicator.W)
	assert.Equal(t, v.P1.X-IndicatorThickness/2, v.Indicator.X)

	h := bs[3]
	assert.Equal(t, IndicatorThickness, h.Indicator.H)
	assert.Equal(t, gridWidth, h.Indicator.W)
}

func TestResolveGridIndex(t *testing.T) {
	bs := GridBoundaries(gridFrames(5), 3, gridWidth)

	tests := []struct {
		name string
		p    Point
		want int
	}{
		{"left of the grid", Point{X: 0, Y: 20}, 0},
		{"between cells 0 and 1", Point{X: 53, Y: 25}, 1},
		{"below everything", Point{X: 60, Y: 500}, 4},
		{"right of the incomplete row", Point{X: 104, Y: 60}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveGridIndex(tt.p, bs))
		})
	}
}

func TestResolveGridIndex_TieGoesToFirst(t *testing.T) {
	bs := GridBoundaries(gridFrames(5), 3, gridWidth)

	// (78, 20) is 24pt from boundary 1, boundary 2, and the row-break
	// boundary alike. The earliest boundary wins.
	assert.Equal(t, 1, ResolveGridIndex(Point{X: 78, Y: 20}, bs))
}

func TestResolveGridIndex_DegenerateInput(t *testing.T) {
	bs := GridBoundaries(gridFrames(3), 3, gridWidth)

	assert.Equal(t, -1, ResolveGridIndex(Point{X: 1, Y: 1}, nil))
	assert.Equal(t, -1, ResolveGridIndex(Point{X: math.NaN(), Y: 1}, bs))
}
