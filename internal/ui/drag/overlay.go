package drag

import (
	"sync"

	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// IndicatorOverlay is an in-memory indicator publisher: adapters write the
// current insertion-indicator frame, the render layer reads it each frame.
type IndicatorOverlay struct {
	mu      sync.Mutex
	frame   geometry.Rect
	visible bool
}

// NewIndicatorOverlay creates a hidden overlay.
func NewIndicatorOverlay() *IndicatorOverlay {
	return &IndicatorOverlay{}
}

// PublishIndicator implements port.IndicatorPublisher.
func (o *IndicatorOverlay) PublishIndicator(frame geometry.Rect) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.frame = frame
	o.visible = true
}

// ClearIndicator implements port.IndicatorPublisher.
func (o *IndicatorOverlay) ClearIndicator() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = false
}

// Current returns the indicator frame and whether it is visible.
func (o *IndicatorOverlay) Current() (geometry.Rect, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.frame, o.visible
}
