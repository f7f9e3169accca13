package geometry

import "math"

// Orientation tags a grid boundary as lying between rows or between columns.
type Orientation int

const (
	Horizontal Orientation = iota // Between rows
	Vertical                      // Between columns within a row
)

// IndicatorThickness is the thickness of the strip published for rendering
// the insertion indicator over a grid boundary.
const IndicatorThickness = 3.0

// Boundary is one oriented insertion boundary of a grid container: the
// segment used for distance resolution plus the thin rectangle where the
// insertion indicator is rendered.
type Boundary struct {
	Index       int
	Orientation Orientation
	P1, P2      Point
	Indicator   Rect
}

// GridBoundaries computes the N+1 insertion boundaries of a grid of N cells
// laid out columns-wide. Vertical extents are computed per row, so ragged
// cell heights do not skew the boundaries.
//
// Edge cases: boundary 0 sits half a gap left of cell 0; a row break yields
// a horizontal boundary spanning the container width; the trailing boundary
// after an incomplete final row is vertical (there is room in that row for
// another item), and horizontal only when the final row is full.
func GridBoundaries(frames []Rect, columns int, containerWidth float64) []Boundary {
	n := len(frames)
	if n == 0 || columns <= 0 || !finiteFrames(frames) {
		return nil
	}

	gapX := horizontalGap(frames, columns)
	gapY := verticalGap(frames, columns)

	boundaries := make([]Boundary, 0, n+1)
	for i := 0; i <= n; i++ {
		switch {
		case i == 0:
			minY, maxY := rowExtent(frames, columns, 0)
			x := frames[0].MinX() - gapX/2
			boundaries = append(boundaries, verticalBoundary(0, x, minY, maxY))

		case i == n:
			lastRow := (n - 1) / columns
			minY, maxY := rowExtent(frames, columns, lastRow)
			if n%columns != 0 {
				// Incomplete final row: there is room for another item,
				// so the boundary stands after the last cell.
				x := frames[n-1].MaxX() + gapX/2
				boundaries = append(boundaries, verticalBoundary(n, x, minY, maxY))
			} else {
				y := maxY + gapY/2
				boundaries = append(boundaries, horizontalBoundary(n, y, 0, containerWidth))
			}

		case i%columns == 0:
			// Row break: boundary between the previous row and this one.
			row := i / columns
			_, prevMaxY := rowExtent(frames, columns, row-1)
			curMinY, _ := rowExtent(frames, columns, row)
			y := (prevMaxY + curMinY) / 2
			boundaries = append(boundaries, horizontalBoundary(i, y, 0, containerWidth))

		default:
			row := i / columns
			minY, maxY := rowExtent(frames, columns, row)
			x := (frames[i-1].MaxX() + frames[i].MinX()) / 2
			boundaries = append(boundaries, verticalBoundary(i, x, minY, maxY))
		}
	}
	return boundaries
}

// ResolveGridIndex returns the index of the boundary whose segment is
// closest to p (true point-to-segment distance). Equidistant boundaries
// resolve to the first match. Returns -1 for empty input or a non-finite
// query point.
func ResolveGridIndex(p Point, boundaries []Boundary) int {
	if len(boundaries) == 0 || !p.IsFinite() {
		return -1
	}
	best := 0
	bestDist := pointSegmentDistance(p, boundaries[0].P1, boundaries[0].P2)
	for i := 1; i < len(boundaries); i++ {
		d := pointSegmentDistance(p, boundaries[i].P1, boundaries[i].P2)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return boundaries[best].Index
}

func verticalBoundary(index int, x, minY, maxY float64) Boundary {
	return Boundary{
		Index:       index,
		Orientation: Vertical,
		P1:          Point{X: x, Y: minY},
		P2:          Point{X: x, Y: maxY},
		Indicator:   Rect{X: x - IndicatorThickness/2, Y: minY, W: IndicatorThickness, H: maxY - minY},
	}
}

func horizontalBoundary(index int, y, minX, maxX float64) Boundary {
	return Boundary{
		Index:       index,
		Orientation: Horizontal,
		P1:          Point{X: minX, Y: y},
		P2:          Point{X: maxX, Y: y},
		Indicator:   Rect{X: minX, Y: y - IndicatorThickness/2, W: maxX - minX, H: IndicatorThickness},
	}
}

// rowExtent returns [min MinY, max MaxY] over the cells of one row.
func rowExtent(frames []Rect, columns, row int) (minY, maxY float64) {
	start := row * columns
	end := start + columns
	if end > len(frames) {
		end = len(frames)
	}
	minY = frames[start].MinY()
	maxY = frames[start].MaxY()
	for _, f := range frames[start+1 : end] {
		if f.MinY() < minY {
			minY = f.MinY()
		}
		if f.MaxY() > maxY {
			maxY = f.MaxY()
		}
	}
	return minY, maxY
}

// horizontalGap measures the spacing between adjacent cells in a row,
// from the first in-row pair available. Single-column grids fall back to
// the vertical gap so boundary 0 still clears the cell edge.
func horizontalGap(frames []Rect, columns int) float64 {
	for i := 1; i < len(frames); i++ {
		if i%columns != 0 {
			return frames[i].MinX() - frames[i-1].MaxX()
		}
	}
	return verticalGap(frames, columns)
}

// verticalGap measures the spacing between the first two rows, zero when
// the grid has a single row.
func verticalGap(frames []Rect, columns int) float64 {
	if len(frames) <= columns {
		return 0
	}
	_, firstMaxY := rowExtent(frames, columns, 0)
	secondMinY, _ := rowExtent(frames, columns, 1)
	return secondMinY - firstMaxY
}

// pointSegmentDistance returns the distance from p to the segment a-b.
func pointSegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
