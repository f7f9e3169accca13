package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// canvas is a fixed-size character grid the demo paints zones onto. Each
// cell holds one already-styled display cell, so drawn boxes line up
// exactly with the frames the engine hit-tests.
type canvas struct {
	width  int
	height int
	cells  [][]string
}

func newCanvas(width, height int) *canvas {
	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	return &canvas{width: width, height: height, cells: cells}
}

// write paints text starting at (x, y), one styled cell per rune.
func (c *canvas) write(x, y int, text string, style lipgloss.Style) {
	if y < 0 || y >= c.height {
		return
	}
	for i, r := range []rune(text) {
		cx := x + i
		if cx < 0 || cx >= c.width {
			continue
		}
		c.cells[y][cx] = style.Render(string(r))
	}
}

// box draws a single-line border around the frame.
func (c *canvas) box(frame geometry.Rect, style lipgloss.Style) {
	x0, y0 := int(frame.X), int(frame.Y)
	x1, y1 := int(frame.X+frame.W)-1, int(frame.Y+frame.H)-1
	if x1 <= x0 || y1 <= y0 {
		return
	}

	c.write(x0, y0, "╭"+strings.Repeat("─", x1-x0-1)+"╮", style)
	c.write(x0, y1, "╰"+strings.Repeat("─", x1-x0-1)+"╯", style)
	for y := y0 + 1; y < y1; y++ {
		c.write(x0, y, "│", style)
		c.write(x1, y, "│", style)
	}
}

func (c *canvas) String() string {
	rows := make([]string, c.height)
	for y, row := range c.cells {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}
