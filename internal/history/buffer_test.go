package history

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryWithLatency(ms float64) *Entry {
	return NewEntry(received(ms), testTimeoutMS)
}

func TestBuffer_NewestFirst(t *testing.T) {
	b := NewBuffer(10)
	first := entryWithLatency(10)
	second := entryWithLatency(20)
	b.Insert(first)
	b.Insert(second)

	require.Equal(t, 2, b.Len())
	assert.Same(t, second, b.At(0))
	assert.Same(t, first, b.At(1))
}

func TestBuffer_CapacityEvictsOldest(t *testing.T) {
	b := NewBuffer(3)
	entries := make([]*Entry, 4)
	for i, lat := range []float64{50, 30, 70, 10} {
		entries[i] = entryWithLatency(lat)
		b.Insert(entries[i])
	}

	require.Equal(t, 3, b.Len(), "length never exceeds capacity")
	assert.InDelta(t, 10, b.At(0).Latency(), 1e-9)
	assert.InDelta(t, 70, b.At(1).Latency(), 1e-9)
	assert.InDelta(t, 30, b.At(2).Latency(), 1e-9)
	assert.InDelta(t, 10, b.MinLatency(), 1e-9)
}

func TestBuffer_MinLatencyMonotonic(t *testing.T) {
	b := NewBuffer(2)
	assert.True(t, math.IsInf(b.MinLatency(), 1), "empty buffer has no reference yet")

	prev := b.MinLatency()
	for _, lat := range []float64{80, 40, 90, 40, 15, 100} {
		b.Insert(entryWithLatency(lat))
		assert.LessOrEqual(t, b.MinLatency(), prev)
		prev = b.MinLatency()
	}
	assert.InDelta(t, 15, b.MinLatency(), 1e-9)
}

func TestBuffer_MinLatencySurvivesEviction(t *testing.T) {
	b := NewBuffer(1)
	b.Insert(entryWithLatency(5))
	b.Insert(entryWithLatency(500))

	require.Equal(t, 1, b.Len())
	assert.InDelta(t, 500, b.At(0).Latency(), 1e-9)
	assert.InDelta(t, 5, b.MinLatency(), 1e-9,
		"the evicted best still anchors the color scale")
}

func TestNewBuffer_ClampsCapacity(t *testing.T) {
	b := NewBuffer(0)
	assert.Equal(t, 1, b.Capacity())
	b.Insert(entryWithLatency(1))
	b.Insert(entryWithLatency(2))
	assert.Equal(t, 1, b.Len())
}
