package ui

// Selection is the movable cursor over the history buffer. It either points
// at one entry or is inactive; index validity is re-checked against the
// buffer length on every use, so a stale index degrades to no selection.
type Selection struct {
	index  int
	active bool
}

// Index returns the selected index and whether a selection is active.
func (s *Selection) Index() (int, bool) {
	return s.index, s.active
}

// Next moves to the next (older) entry, or to the newest if nothing is
// selected. No-op on an empty buffer.
func (s *Selection) Next(length int) {
	if length == 0 {
		return
	}
	if !s.active {
		s.active = true
		s.index = 0
		return
	}
	if s.index < length-1 {
		s.index++
	}
}

// Prev moves to the previous (newer) entry, or to the newest if nothing is
// selected. No-op on an empty buffer.
func (s *Selection) Prev(length int) {
	if length == 0 {
		return
	}
	if !s.active {
		s.active = true
		s.index = 0
		return
	}
	if s.index > 0 {
		s.index--
	}
}

// First selects the newest entry. No-op on an empty buffer.
func (s *Selection) First(length int) {
	if length == 0 {
		return
	}
	s.active = true
	s.index = 0
}

// Last selects the oldest retained entry. No-op on an empty buffer.
func (s *Selection) Last(length int) {
	if length == 0 {
		return
	}
	s.active = true
	s.index = length - 1
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.active = false
	s.index = 0
}

// Shift keeps the selection anchored to the same logical entry after an
// insert pushed everything one slot down. length is the buffer length after
// the insert; if the selected entry was just evicted, the selection clears.
func (s *Selection) Shift(length int) {
	if !s.active {
		return
	}
	s.index++
	s.Validate(length)
}

// Validate clears the selection if its index no longer addresses an entry.
func (s *Selection) Validate(length int) {
	if s.active && s.index >= length {
		s.Clear()
	}
}
