package entity

import "time"

// Tab represents a browser tab as seen by the drag engine: identity and
// display metadata only. Rendering and navigation state live elsewhere.
type Tab struct {
	ID        TabID
	Title     string
	URL       string
	CreatedAt time.Time
}

// NewTab creates a new tab.
func NewTab(id TabID, title, url string) *Tab {
	return &Tab{
		ID:        id,
		Title:     title,
		URL:       url,
		CreatedAt: time.Now(),
	}
}

// Payload returns the drag payload describing this tab.
func (t *Tab) Payload() DragPayload {
	return DragPayload{TabID: t.ID, Title: t.Title, URL: t.URL}
}

// Board owns the ordered tab list of every container. It is the reference
// tab-ownership model used by the demo, scenario replay, and tests; a real
// browser front end substitutes its own implementation behind port.TabMover.
type Board struct {
	containers map[Container][]*Tab
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{containers: make(map[Container][]*Tab)}
}

// Tabs returns the ordered tabs of a container. The returned slice is the
// board's own backing slice; callers must not mutate it.
func (b *Board) Tabs(c Container) []*Tab {
	return b.containers[c]
}

// Len returns the number of tabs in a container.
func (b *Board) Len(c Container) int {
	return len(b.containers[c])
}

// Append adds a tab at the end of a container.
func (b *Board) Append(c Container, tab *Tab) {
	b.containers[c] = append(b.containers[c], tab)
}

// Insert places a tab at index, clamping to [0, len].
func (b *Board) Insert(c Container, index int, tab *Tab) {
	tabs := b.containers[c]
	if index < 0 {
		index = 0
	}
	if index > len(tabs) {
		index = len(tabs)
	}
	tabs = append(tabs, nil)
	copy(tabs[index+1:], tabs[index:])
	tabs[index] = tab
	b.containers[c] = tabs
}

// RemoveAt removes and returns the tab at index, or nil if out of range.
func (b *Board) RemoveAt(c Container, index int) *Tab {
	tabs := b.containers[c]
	if index < 0 || index >= len(tabs) {
		return nil
	}
	tab := tabs[index]
	b.containers[c] = append(tabs[:index], tabs[index+1:]...)
	return tab
}

// Find returns the container and index currently holding the tab.
func (b *Board) Find(id TabID) (Container, int, bool) {
	for c, tabs := range b.containers {
		for i, tab := range tabs {
			if tab.ID == id {
				return c, i, true
			}
		}
	}
	return Container{}, 0, false
}

// Containers returns every container that currently holds at least one tab.
func (b *Board) Containers() []Container {
	out := make([]Container, 0, len(b.containers))
	for c, tabs := range b.containers {
		if len(tabs) > 0 {
			out = append(out, c)
		}
	}
	return out
}
