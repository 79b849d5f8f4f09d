package history

import "math"

// Buffer is a bounded, newest-first collection of entries. The smallest
// batch latency ever inserted is retained as the reference for color
// scaling, even after the entry itself is evicted.
type Buffer struct {
	entries    []*Entry
	capacity   int
	minLatency float64
}

// NewBuffer returns an empty buffer holding at most capacity entries.
// Capacities below one are raised to one.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		capacity:   capacity,
		minLatency: math.Inf(1),
	}
}

// Insert pushes e to the front, evicting the oldest entry once the buffer
// is full. The minimum-latency reference is updated before eviction is
// considered, so an evicted best still anchors the scale.
func (b *Buffer) Insert(e *Entry) {
	if lat := e.Latency(); lat < b.minLatency {
		b.minLatency = lat
	}
	b.entries = append([]*Entry{e}, b.entries...)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
}

// Len returns the number of retained entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Capacity returns the maximum number of retained entries.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// At returns the entry at index i, 0 being the newest.
func (b *Buffer) At(i int) *Entry {
	return b.entries[i]
}

// MinLatency returns the smallest batch latency ever inserted, or +Inf
// while the buffer has never held an entry.
func (b *Buffer) MinLatency() float64 {
	return b.minLatency
}
