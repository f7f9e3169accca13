package geometry

// ListBoundaries computes the N+1 insertion offsets of a linear container
// along the layout axis (Y): one before the first item, midpoints between
// adjacent item edges, and one after the last item.
//
// The frames must be contiguous and in list order. An empty result signals
// "empty zone"; callers fall back to a zone-relative default position rather
// than failing.
func ListBoundaries(frames []Rect) []float64 {
	if len(frames) == 0 || !finiteFrames(frames) {
		return nil
	}

	offsets := make([]float64, 0, len(frames)+1)
	offsets = append(offsets, frames[0].MinY())
	for i := 1; i < len(frames); i++ {
		offsets = append(offsets, (frames[i-1].MaxY()+frames[i].MinY())/2)
	}
	offsets = append(offsets, frames[len(frames)-1].MaxY())
	return offsets
}

// ResolveListIndex returns the index of the first offset at or after y,
// clamped to [0, len(offsets)-1]. Returns -1 for an empty offset list or a
// non-finite query; callers ignore the update in that case.
func ResolveListIndex(y float64, offsets []float64) int {
	if len(offsets) == 0 || !isFinite(y) {
		return -1
	}
	for i, off := range offsets {
		if off >= y {
			return i
		}
	}
	return len(offsets) - 1
}

// ClampInsertionIndex clamps a resolved index to the container invariant:
// [0, itemCount] for a foreign-container drop, [0, itemCount-1] for a
// same-container reorder (the dragged item itself still occupies a slot).
func ClampInsertionIndex(idx, itemCount int, sameContainer bool) int {
	max := itemCount
	if sameContainer {
		max = itemCount - 1
	}
	if max < 0 {
		max = 0
	}
	if idx < 0 {
		return 0
	}
	if idx > max {
		return max
	}
	return idx
}
