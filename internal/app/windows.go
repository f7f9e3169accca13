package app

import (
	"sync"

	"github.com/bnema/tabdrag/internal/application/port"
)

// StaticWindowEnumerator is a WindowEnumerator fed by the host: the demo
// and replay front ends push their window frames here, and tests use it to
// simulate multi-window layouts.
type StaticWindowEnumerator struct {
	mu      sync.Mutex
	windows []port.WindowInfo
}

// NewStaticWindowEnumerator creates an enumerator with no windows.
func NewStaticWindowEnumerator() *StaticWindowEnumerator {
	return &StaticWindowEnumerator{}
}

// SetWindows replaces the visible window list.
func (e *StaticWindowEnumerator) SetWindows(windows []port.WindowInfo) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.windows = append([]port.WindowInfo(nil), windows...)
}

// VisibleWindows implements port.WindowEnumerator.
func (e *StaticWindowEnumerator) VisibleWindows() []port.WindowInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]port.WindowInfo(nil), e.windows...)
}
