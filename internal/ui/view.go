package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"
	"github.com/lucasb-eyer/go-colorful"

	"pingdeck/internal/grid"
	"pingdeck/internal/history"
	"pingdeck/internal/screen"
)

const (
	// Minimum height of the inspect frame. Bumped to the next odd value so
	// the selected entry's label sits on the frame's center row.
	minInspectHeight = 5

	inspectTitle = " Inspect packet "
	listTitle    = " Packet list "

	frameColor = "#6e9ecf"
)

// selectionTint is the overlay blended onto the selected entry in the grid.
var selectionTint = history.Tint{
	Weight: 0.5,
	Color:  colorful.Color{R: 100.0 / 255.0, G: 140.0 / 255.0, B: 1},
}

// View implements tea.Model. The bottom line is the key help; everything
// above is the history grid, repartitioned around the inspect frame while
// an entry is selected.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	if m.buffer.Len() == 0 {
		return m.splash()
	}

	area := grid.Rect{X: 0, Y: 0, W: m.width, H: m.height - 1}
	canvas := screen.New(area.W, area.H)

	if idx, ok := m.sel.Index(); ok && idx < m.buffer.Len() {
		if !m.renderOverlay(canvas, area, idx) {
			m.renderGrid(canvas, area)
		}
	} else {
		m.renderGrid(canvas, area)
	}

	return canvas.String() + "\n" + m.help.View(m.keys)
}

// splash fills the screen before the first batch lands.
func (m Model) splash() string {
	banner := figure.NewFigure("PINGDECK", "", true)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)

	var out strings.Builder
	out.WriteString("\n")
	for _, line := range strings.Split(banner.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out.WriteString(center.Render(style.Render(line)) + "\n")
	}
	out.WriteString("\n")
	out.WriteString(center.Render(fmt.Sprintf("probing %s every %s ...", m.cfg.Address, m.cfg.Interval)))
	out.WriteString("\n\n")
	out.WriteString(m.help.View(m.keys))
	return out.String()
}

// tintFor returns the emphasis overlay for the entry at index i: the
// selection tint for the selected entry, the zero tint for every other.
func (m Model) tintFor(i int) history.Tint {
	if idx, ok := m.sel.Index(); ok && idx == i {
		return selectionTint
	}
	return history.Tint{}
}

// renderGrid paints the whole buffer into area, newest entry in the first
// partition cell. Entries beyond what the geometry can hold stay unpainted.
func (m Model) renderGrid(c *screen.Canvas, area grid.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	p := grid.NewPartitioner(area, m.buffer.Len())
	for i := 0; i < m.buffer.Len(); i++ {
		r, ok := p.Next()
		if !ok {
			break
		}
		m.buffer.At(i).Render(c, r, m.buffer.MinLatency(), m.tintFor(i))
	}
}

// renderOverlay carves an inspect frame for the selected entry off the top
// of area and paints the buffer into a framed list below it. Returns false
// when the frame cannot fit, in which case the caller falls back to the
// plain grid.
func (m Model) renderOverlay(c *screen.Canvas, area grid.Rect, idx int) bool {
	cells := grid.Partition(area, m.buffer.Len())
	if len(cells) == 0 {
		return false
	}

	h := cells[0].H
	if h < minInspectHeight {
		h = minInspectHeight
	}
	if h%2 == 0 {
		h++
	}
	if h > area.H {
		return false
	}

	inspect := grid.Rect{X: area.X, Y: area.Y, W: area.W, H: h}
	list := grid.Rect{X: area.X, Y: area.Y + h, W: area.W, H: area.H - h}

	c.Border(inspect, inspectTitle, frameColor)
	inner := inset(inspect)
	entry := m.buffer.At(idx)
	entry.Render(c, inner, m.buffer.MinLatency(), history.Tint{})
	if inner.H >= 3 {
		stamp := fmt.Sprintf(" captured %s ", entry.CapturedAt().Format("15:04:05"))
		x := inner.X + inner.W/2 - len(stamp)/2
		c.SetString(x, inner.Y+inner.H-1, stamp, inner.X+inner.W-x)
	}

	c.Border(list, listTitle, frameColor)
	m.renderGrid(c, inset(list))
	return true
}

// inset shrinks a rectangle by its one-cell frame.
func inset(r grid.Rect) grid.Rect {
	out := grid.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
