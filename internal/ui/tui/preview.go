package tui

import (
	"sync"

	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// previewSurface implements port.PreviewSurface for the terminal demo: the
// floating drag preview is drawn at the cursor on every frame, independent
// of any zone's box.
type previewSurface struct {
	mu      sync.Mutex
	title   string
	pos     geometry.Point
	visible bool
}

func (p *previewSurface) Show(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
	p.visible = true
}

func (p *previewSurface) MoveTo(screen geometry.Point) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = screen
}

func (p *previewSurface) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

func (p *previewSurface) current() (string, geometry.Point, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title, p.pos, p.visible
}
