package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_SingleItemFillsArea(t *testing.T) {
	for _, area := range []Rect{
		{X: 0, Y: 0, W: 80, H: 24},
		{X: 0, Y: 0, W: 1, H: 1},
		{X: 3, Y: 7, W: 13, H: 5},
		{X: 0, Y: 0, W: 120, H: 1},
		{X: 0, Y: 0, W: 1, H: 40},
	} {
		got := Partition(area, 1)
		require.Len(t, got, 1, "area %+v", area)
		assert.Equal(t, area, got[0], "a single item should get the full area")
	}
}

func TestPartition_EmptyCases(t *testing.T) {
	assert.Empty(t, Partition(Rect{W: 80, H: 24}, 0), "zero items")
	assert.Empty(t, Partition(Rect{W: 0, H: 24}, 5), "zero width")
	assert.Empty(t, Partition(Rect{W: 80, H: 0}, 5), "zero height")
	assert.Empty(t, Partition(Rect{}, 0), "all zero")
}

func TestPartition_Sweep(t *testing.T) {
	for w := 0; w <= 12; w++ {
		for h := 0; h <= 8; h++ {
			for n := 0; n <= 40; n++ {
				name := fmt.Sprintf("%dx%d n=%d", w, h, n)
				area := Rect{W: w, H: h}
				got := Partition(area, n)

				want := n
				if cells := w * h; cells < want {
					want = cells
				}
				require.Len(t, got, want, name)

				for i, r := range got {
					require.Greater(t, r.W, 0, "%s rect %d", name, i)
					require.Greater(t, r.H, 0, "%s rect %d", name, i)
					require.GreaterOrEqual(t, r.X, 0, "%s rect %d", name, i)
					require.GreaterOrEqual(t, r.Y, 0, "%s rect %d", name, i)
					require.LessOrEqual(t, r.X+r.W, w, "%s rect %d exceeds width", name, i)
					require.LessOrEqual(t, r.Y+r.H, h, "%s rect %d exceeds height", name, i)
					for j := 0; j < i; j++ {
						require.False(t, r.Intersects(got[j]),
							"%s rects %d and %d overlap: %+v %+v", name, j, i, got[j], r)
					}
				}
			}
		}
	}
}

func TestPartition_OffsetOrigin(t *testing.T) {
	area := Rect{X: 5, Y: 3, W: 10, H: 4}
	got := Partition(area, 4)
	require.Len(t, got, 4)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.X, area.X)
		assert.GreaterOrEqual(t, r.Y, area.Y)
		assert.LessOrEqual(t, r.X+r.W, area.X+area.W)
		assert.LessOrEqual(t, r.Y+r.H, area.Y+area.H)
	}
}

func TestPartition_TerminalSized(t *testing.T) {
	area := Rect{W: 80, H: 24}
	got := Partition(area, 5)
	require.Len(t, got, 5)

	total := 0
	for i, r := range got {
		total += r.Area()
		for j := 0; j < i; j++ {
			require.False(t, r.Intersects(got[j]), "rects %d and %d overlap", j, i)
		}
	}
	assert.Equal(t, 80*24, total, "five entries should tile the whole terminal")
}

func TestPartition_MoreItemsThanCells(t *testing.T) {
	got := Partition(Rect{W: 3, H: 2}, 100)
	assert.Len(t, got, 6, "only one rect per cell is placeable")
}

func TestPartition_RowMajorOrder(t *testing.T) {
	got := Partition(Rect{W: 10, H: 3}, 6)
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		inOrder := cur.Y > prev.Y || (cur.Y == prev.Y && cur.X > prev.X)
		assert.True(t, inOrder, "rect %d (%+v) should come after %+v", i, cur, prev)
	}
}

func TestPartitioner_IsSingleUse(t *testing.T) {
	area := Rect{W: 20, H: 10}
	p := NewPartitioner(area, 3)
	for i := 0; i < 3; i++ {
		_, ok := p.Next()
		require.True(t, ok)
	}
	_, ok := p.Next()
	assert.False(t, ok, "exhausted partitioner keeps returning ok=false")
	_, ok = p.Next()
	assert.False(t, ok)

	// A fresh partitioner over the same area yields the same sequence.
	assert.Equal(t, Partition(area, 3), Partition(area, 3))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 0, ceilDiv(0, 5))
	assert.Equal(t, 0, ceilDiv(5, 0))
	assert.Equal(t, 1, ceilDiv(1, 5))
	assert.Equal(t, 2, ceilDiv(10, 5))
	assert.Equal(t, 3, ceilDiv(11, 5))
}
