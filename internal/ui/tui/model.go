// Package tui provides the interactive terminal demo: a board of drop zones
// rendered as boxes, with mouse-driven tab dragging flowing through the
// real engine (gesture initiation path, target adapters, cross-window
// coordinator, commit emission).
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabdrag/internal/app"
	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
	"github.com/bnema/tabdrag/internal/ui/drag"
)

const (
	zoneEssentials drag.ZoneID = "essentials"
	zonePinned     drag.ZoneID = "space-1/pinned"
	zoneRegular    drag.ZoneID = "space-1/regular"
	zoneFolder     drag.ZoneID = "folder-1"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dragStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Bold(true)
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	commitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// keyMap holds the demo's keybindings.
type keyMap struct {
	Quit   key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
	}
}

// zoneLayout is a zone's fixed placement in the terminal.
type zoneLayout struct {
	id      drag.ZoneID
	label   string
	frame   geometry.Rect
	cell    geometry.Size
	spacing float64
	columns int // 0 means list
}

func defaultLayout() []zoneLayout {
	return []zoneLayout{
		{id: zoneEssentials, label: "Essentials", frame: geometry.Rect{X: 2, Y: 1, W: 46, H: 8}, cell: geometry.Size{W: 14, H: 3}, spacing: 1, columns: 3},
		{id: zonePinned, label: "Space 1 · Pinned", frame: geometry.Rect{X: 2, Y: 11, W: 30, H: 7}, cell: geometry.Size{W: 28, H: 2}, spacing: 0},
		{id: zoneFolder, label: "Folder · Reading", frame: geometry.Rect{X: 40, Y: 11, W: 30, H: 7}, cell: geometry.Size{W: 28, H: 2}, spacing: 0},
		{id: zoneRegular, label: "Space 1 · Tabs", frame: geometry.Rect{X: 2, Y: 20, W: 30, H: 9}, cell: geometry.Size{W: 28, H: 2}, spacing: 0},
	}
}

// Model is the Bubble Tea model for the drag demo.
type Model struct {
	ctx     context.Context
	engine  *app.Engine
	layout  []zoneLayout
	preview *previewSurface
	keys    keyMap

	width  int
	height int
	lastOp string
}

// NewModel builds the demo board and wires the engine.
func NewModel(ctx context.Context, engine *app.Engine, preview *previewSurface) Model {
	m := Model{
		ctx:     ctx,
		engine:  engine,
		layout:  defaultLayout(),
		preview: preview,
		keys:    defaultKeyMap(),
		width:   80,
		height:  31,
	}

	containers := map[drag.ZoneID]entity.Container{
		zoneEssentials: entity.Essentials(),
		zonePinned:     entity.SpacePinned("space-1"),
		zoneRegular:    entity.SpaceRegular("space-1"),
		zoneFolder:     entity.Folder("folder-1"),
	}
	for _, zl := range m.layout {
		var columns *int
		if zl.columns > 0 {
			c := zl.columns
			columns = &c
		}
		// Item frames start one row below the zone's title border.
		inner := geometry.Rect{X: zl.frame.X + 1, Y: zl.frame.Y + 1, W: zl.frame.W - 2, H: zl.frame.H - 2}
		engine.AddZone(zl.id, containers[zl.id], inner, zl.cell, zl.spacing, columns)
	}
	engine.SetWindows([]port.WindowInfo{{ID: "terminal", Frame: geometry.Rect{X: 0, Y: 0, W: 80, H: 31}}})
	return m
}

// NewDemo wires a demo engine and model sharing one preview surface.
func NewDemo(ctx context.Context, opts app.Options) Model {
	preview := &previewSurface{}
	opts.Preview = preview
	return NewModel(ctx, NewEngine(opts), preview)
}

// NewEngine seeds the demo board.
func NewEngine(opts app.Options) *app.Engine {
	board := entity.NewBoard()
	ess := entity.Essentials()
	board.Append(ess, entity.NewTab("t-mail", "Mail", "https://mail.example.com"))
	board.Append(ess, entity.NewTab("t-cal", "Calendar", "https://cal.example.com"))
	board.Append(ess, entity.NewTab("t-chat", "Chat", "https://chat.example.com"))
	board.Append(ess, entity.NewTab("t-music", "Music", "https://music.example.com"))

	pinned := entity.SpacePinned("space-1")
	board.Append(pinned, entity.NewTab("t-docs", "Docs", "https://docs.example.com"))
	board.Append(pinned, entity.NewTab("t-ci", "CI", "https://ci.example.com"))

	regular := entity.SpaceRegular("space-1")
	board.Append(regular, entity.NewTab("t-review", "Code Review", "https://review.example.com"))
	board.Append(regular, entity.NewTab("t-wiki", "Wiki", "https://wiki.example.com"))
	board.Append(regular, entity.NewTab("t-news", "News", "https://news.example.com"))

	folder := entity.Folder("folder-1")
	board.Append(folder, entity.NewTab("t-paper", "Paper", "https://paper.example.com"))
	board.Append(folder, entity.NewTab("t-blog", "Blog", "https://blog.example.com"))

	return app.NewEngine(board, opts)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetWindows([]port.WindowInfo{{
			ID:    "terminal",
			Frame: geometry.Rect{X: 0, Y: 0, W: float64(msg.Width), H: float64(msg.Height)},
		}})
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.engine.CancelDrag()
			return m, nil
		}

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	p := geometry.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.engine.PointerDown(p)
		}
	case tea.MouseActionMotion:
		m.engine.PointerMoved(p)
	case tea.MouseActionRelease:
		if op := m.engine.PointerUp(m.ctx, p); op != nil {
			m.lastOp = op.String()
		}
	}
	return m
}

// View implements tea.Model. The zones are painted onto a character canvas
// so the drawn boxes line up exactly with the frames the engine hit-tests.
func (m Model) View() string {
	c := newCanvas(maxInt(m.width, 80), maxInt(m.height, 31))

	for _, zl := range m.layout {
		m.drawZone(c, zl)
	}
	m.drawIndicator(c)
	m.drawPreview(c)

	status := "drag tabs with the mouse · esc cancels · q quits"
	c.write(2, c.height-1, status, statusStyle)
	if m.lastOp != "" {
		c.write(2+len([]rune(status))+3, c.height-1, "last: "+m.lastOp, commitStyle)
	}

	return c.String()
}

func (m Model) drawZone(c *canvas, zl zoneLayout) {
	c.box(zl.frame, borderStyle)
	c.write(int(zl.frame.X)+2, int(zl.frame.Y), " "+zl.label+" ", titleStyle)

	z, ok := m.engine.Registry().Zone(zl.id)
	if !ok {
		return
	}
	tabs := m.engine.Board().Tabs(z.Container)
	frames := z.ItemFrames()
	dragging := m.engine.Session().IsDragging()
	draggedID := m.engine.Session().Payload().TabID

	for i, frame := range frames {
		if i >= len(tabs) {
			break
		}
		win := z.ToWindow(frame)
		label := truncate(tabs[i].Title, int(frame.W)-2)
		style := tabStyle
		if dragging && tabs[i].ID == draggedID {
			style = dragStyle
		}
		c.write(int(win.X)+1, int(win.Y), label, style)
	}
}

// drawIndicator paints the current insertion indicator, converting the
// zone-local frame published by the target adapter into window space.
func (m Model) drawIndicator(c *canvas) {
	zoneID, ok := m.engine.Session().ActiveZone()
	if !ok {
		return
	}
	frame, visible := m.engine.Overlay().Current()
	if !visible {
		return
	}
	z, found := m.engine.Registry().Zone(zoneID)
	if !found {
		return
	}
	win := z.ToWindow(frame)

	if win.W >= win.H {
		y := int(win.Y + win.H/2)
		c.write(int(win.X), y, strings.Repeat("━", maxInt(int(win.W), 1)), markerStyle)
	} else {
		x := int(win.X + win.W/2)
		for y := int(win.Y); y < int(win.Y+win.H); y++ {
			c.write(x, y, "┃", markerStyle)
		}
	}
}

func (m Model) drawPreview(c *canvas) {
	title, pos, visible := m.preview.current()
	if !visible {
		return
	}
	c.write(int(pos.X)+1, int(pos.Y), " "+truncate(title, 20)+" ", dragStyle)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
