// Package geometry implements the pure boundary calculator for the drag
// engine: it maps measured item frames to ordered insertion boundaries for
// linear lists and 2-D grids, and resolves pointer positions to insertion
// indices. Everything here is stateless and safe to call on every pointer
// move; boundaries are derived, never stored.
package geometry

import "math"

// Point is a position in whatever coordinate space the caller works in.
type Point struct {
	X, Y float64
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle.
// Edges count as inside on the min side, outside on the max side.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Inset returns the rectangle shrunk by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// IsFinite reports whether all four components are finite numbers.
func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.W) && isFinite(r.H)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteFrames reports whether every frame is finite. A single bad frame
// invalidates the whole measurement; callers then treat the zone as empty.
func finiteFrames(frames []Rect) bool {
	for _, f := range frames {
		if !f.IsFinite() {
			return false
		}
	}
	return true
}
