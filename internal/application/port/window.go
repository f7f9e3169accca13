package port

import "github.com/bnema/tabdrag/internal/domain/geometry"

// WindowID identifies one on-screen window.
type WindowID string

// WindowInfo is one visible window's identity and screen-space frame.
type WindowInfo struct {
	ID    WindowID
	Frame geometry.Rect
}

// WindowEnumerator is the window-management collaborator: it enumerates the
// currently visible windows so the cross-window coordinator can resolve
// screen-to-window containment.
type WindowEnumerator interface {
	VisibleWindows() []WindowInfo
}

// PreviewSurface renders the floating drag preview. It lives outside any
// single window's view tree so the preview survives cursor movement across
// window boundaries.
type PreviewSurface interface {
	// Show makes the preview visible with the dragged tab's title.
	Show(title string)

	// MoveTo positions the preview at a screen-space point.
	MoveTo(screen geometry.Point)

	// Hide removes the preview.
	Hide()
}
