// Package grid divides a rectangular character area into n non-overlapping
// cells, one per item to display. Rows are filled left to right before
// wrapping; when height is plentiful each item gets a full-width row, and
// when items outnumber rows the current row is split into several cells.
package grid

// Rect is a rectangle of character cells. W and H are always non-negative.
type Rect struct {
	X, Y, W, H int
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	return r.W * r.H
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Partitioner carves one cell per Next call out of an area, consuming the
// remaining space as it goes. A Partitioner is single-use: build a fresh one
// for every redraw.
type Partitioner struct {
	x, y     int // cursor, relative to the area origin
	width    int // width left in the current row
	maxWidth int // full row width, restored on row wrap
	height   int // rows left, including the current one
	count    int // items left to place
	origin   Rect
}

// NewPartitioner returns a partitioner that will yield up to count
// rectangles tiling area.
func NewPartitioner(area Rect, count int) *Partitioner {
	return &Partitioner{
		width:    area.W,
		maxWidth: area.W,
		height:   area.H,
		count:    count,
		origin:   area,
	}
}

// Partition runs a fresh partitioner to exhaustion and collects the cells in
// display order (top to bottom, left to right).
func Partition(area Rect, count int) []Rect {
	p := NewPartitioner(area, count)
	var out []Rect
	for {
		r, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

// ceilDiv is a/b rounded up, with 0 for a degenerate divisor or dividend.
func ceilDiv(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	return 1 + (a-1)/b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Next yields the next cell, or ok=false once the area or the item count is
// exhausted. Every yielded cell has positive width and height and lies
// within the original area.
func (p *Partitioner) Next() (Rect, bool) {
	if p.height <= 0 || p.count <= 0 {
		return Rect{}, false
	}

	x, y := p.x, p.y

	// Items that fit below the current row if that row held a single
	// full-width cell. Whatever does not fit below must be packed into the
	// current row, hence the width divisor.
	after := min(p.count, (p.height-1)*p.maxWidth)
	wdiv := (p.count - after) + 1
	hdiv := min(p.height, p.count)

	// The last row cannot wrap, so it absorbs one fewer forced split.
	if p.height == 1 && wdiv > 0 {
		wdiv--
	}

	w := ceilDiv(p.width, wdiv)
	h := ceilDiv(p.height, hdiv)
	if w == 0 || h == 0 {
		// No room left on the last row: the remaining items go undrawn.
		p.count = 0
		return Rect{}, false
	}

	p.width -= w
	p.height -= h - 1

	// Row fully consumed: move the cursor to the start of the next row.
	if p.width == 0 && p.height > 1 {
		p.width = p.maxWidth
		p.height--
		p.y++
	}

	p.x += w
	p.y += h - 1
	if p.x >= p.maxWidth {
		p.x = 0
	}

	p.count--

	return Rect{X: p.origin.X + x, Y: p.origin.Y + y, W: w, H: h}, true
}
