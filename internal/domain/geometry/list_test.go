package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listFrames builds count stacked item frames of height 30 with a 4pt gap,
// starting at y=10.
func listFrames(count int) []Rect {
	frames := make([]Rect, 0, count)
	y := 10.0
	for i := 0; i < count; i++ {
		frames = append(frames, Rect{X: 0, Y: y, W: 200, H: 30})
		y += 34
	}
	return frames
}

func TestListBoundaries(t *testing.T) {
	offsets := ListBoundaries(listFrames(3))

	require.Len(t, offsets, 4, "N items yield N+1 boundaries")
	assert.Equal(t, 10.0, offsets[0], "first boundary sits at the top of item 0")
	assert.Equal(t, 42.0, offsets[1], "interior boundaries sit at edge midpoints")
	assert.Equal(t, 76.0, offsets[2])
	assert.Equal(t, 108.0, offsets[3], "last boundary sits at the bottom of the last item")
}

func TestListBoundaries_Empty(t *testing.T) {
	assert.Nil(t, ListBoundaries(nil))
	assert.Nil(t, ListBoundaries([]Rect{}))
}

func TestListBoundaries_NonFiniteFrame(t *testing.T) {
	frames := listFrames(2)
	frames[1].Y = math.NaN()

	assert.Nil(t, ListBoundaries(frames))
}

func TestResolveListIndex(t *testing.T) {
	offsets := ListBoundaries(listFrames(3))

	tests := []struct {
		name string
		y    float64
		want int
	}{
		{"above first item", 0, 0},
		{"top of first item", 10, 0},
		{"inside first item", 30, 1},
		{"exactly on midpoint", 42, 1},
		{"just past midpoint", 43, 2},
		{"inside last item", 100, 3},
		{"below last item", 500, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveListIndex(tt.y, offsets))
		})
	}
}

func TestResolveListIndex_DegenerateInput(t *testing.T) {
	assert.Equal(t, -1, ResolveListIndex(10, nil))
	assert.Equal(t, -1, ResolveListIndex(math.NaN(), []float64{0, 10}))
	assert.Equal(t, -1, ResolveListIndex(math.Inf(1), []float64{0, 10}))
}

func TestClampInsertionIndex(t *testing.T) {
	// Foreign-container drops may append past the last item.
	assert.Equal(t, 3, ClampInsertionIndex(7, 3, false))
	assert.Equal(t, 3, ClampInsertionIndex(3, 3, false))
	assert.Equal(t, 1, ClampInsertionIndex(1, 3, false))

	// Same-container reorders cap at count-1: the dragged item still
	// occupies a slot.
	assert.Equal(t, 2, ClampInsertionIndex(7, 3, true))
	assert.Equal(t, 2, ClampInsertionIndex(3, 3, true))

	assert.Equal(t, 0, ClampInsertionIndex(-2, 3, false))
	assert.Equal(t, 0, ClampInsertionIndex(5, 0, false))
	assert.Equal(t, 0, ClampInsertionIndex(5, 0, true))
}
