// Package screen is a minimal character canvas the dashboard paints into:
// background fills, clipped strings and bordered frames, flushed to a
// lipgloss-styled string once per redraw.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pingdeck/internal/grid"
)

type cell struct {
	r  rune
	fg string // hex color, empty for terminal default
	bg string
}

// Canvas is a fixed-size grid of colored cells. (0,0) is the top-left
// corner; all drawing operations clip to the canvas bounds.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// New returns a blank canvas of the given size. Negative dimensions are
// treated as zero.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) at(x, y int) *cell {
	return &c.cells[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Fill paints the background color over a rectangle, clearing any runes
// already there.
func (c *Canvas) Fill(r grid.Rect, bg string) {
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := r.X; col < r.X+r.W; col++ {
			if !c.inBounds(col, row) {
				continue
			}
			cl := c.at(col, row)
			cl.r = ' '
			cl.bg = bg
		}
	}
}

// SetString writes s starting at (x, y), keeping each cell's background.
// At most maxWidth runes are written and anything outside the canvas is
// dropped.
func (c *Canvas) SetString(x, y int, s string, maxWidth int) {
	c.SetStringColored(x, y, s, "", maxWidth)
}

// SetStringColored is SetString with a foreground color.
func (c *Canvas) SetStringColored(x, y int, s, fg string, maxWidth int) {
	for i, r := range []rune(s) {
		if i >= maxWidth {
			return
		}
		if !c.inBounds(x+i, y) {
			continue
		}
		cl := c.at(x+i, y)
		cl.r = r
		cl.fg = fg
	}
}

// Border draws a single-line frame just inside the rectangle with the title
// embedded in the top edge. Rectangles smaller than 2x2 draw nothing.
func (c *Canvas) Border(r grid.Rect, title, fg string) {
	x, y, w, h := r.X, r.Y, r.W, r.H
	if w < 2 || h < 2 {
		return
	}
	set := func(cx, cy int, r rune) {
		if c.inBounds(cx, cy) {
			cl := c.at(cx, cy)
			cl.r = r
			cl.fg = fg
		}
	}
	for col := x + 1; col < x+w-1; col++ {
		set(col, y, '─')
		set(col, y+h-1, '─')
	}
	for row := y + 1; row < y+h-1; row++ {
		set(x, row, '│')
		set(x+w-1, row, '│')
	}
	set(x, y, '┌')
	set(x+w-1, y, '┐')
	set(x, y+h-1, '└')
	set(x+w-1, y+h-1, '┘')
	if title != "" {
		c.SetStringColored(x+1, y, title, fg, w-2)
	}
}

// String flushes the canvas to one styled line per row. Consecutive cells
// sharing colors are rendered as a single styled run to keep the escape
// sequence count down.
func (c *Canvas) String() string {
	var out strings.Builder
	for y := 0; y < c.height; y++ {
		var run strings.Builder
		runFg, runBg := "", ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(styled(run.String(), runFg, runBg))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.at(x, y)
			if cl.fg != runFg || cl.bg != runBg {
				flush()
				runFg, runBg = cl.fg, cl.bg
			}
			run.WriteRune(cl.r)
		}
		flush()
		if y < c.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func styled(s, fg, bg string) string {
	if fg == "" && bg == "" {
		return s
	}
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style.Render(s)
}
