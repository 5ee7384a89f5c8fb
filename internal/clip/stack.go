package clip

// Stack holds the pushed clip regions above a base entry.
// A nil entry is the "no clip" marker: drawing is limited only by the
// window's visible area. The base entry is set by Replace on an empty
// stack and is never popped.
type Stack struct {
	base    *Region
	entries []*Region
}

// NewStack creates an empty clip stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*Region, 0, 8), // Pre-allocate for common nesting depth
	}
}

// Push pushes a region. The stack takes ownership of r.
func (s *Stack) Push(r *Region) {
	s.entries = append(s.entries, r)
}

// PushNoClip pushes the "no clip" marker.
func (s *Stack) PushNoClip() {
	s.entries = append(s.entries, nil)
}

// Pop removes the most recent entry.
// If the stack is empty, this is a no-op and false is returned.
func (s *Stack) Pop() bool {
	if len(s.entries) == 0 {
		return false
	}
	lastIdx := len(s.entries) - 1
	s.entries[lastIdx] = nil
	s.entries = s.entries[:lastIdx]
	return true
}

// Top returns the region on top of the stack, the base entry when nothing
// is pushed. nil is the "no clip" marker.
func (s *Stack) Top() *Region {
	if len(s.entries) == 0 {
		return s.base
	}
	return s.entries[len(s.entries)-1]
}

// Replace swaps the top entry for r (nil meaning "no clip").
// On an empty stack r becomes the base entry.
func (s *Stack) Replace(r *Region) {
	if len(s.entries) == 0 {
		s.base = r
		return
	}
	s.entries[len(s.entries)-1] = r
}

// Depth returns the number of pushed entries, not counting the base.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Reset clears all entries and the base.
func (s *Stack) Reset() {
	s.base = nil
	clear(s.entries)
	s.entries = s.entries[:0]
}
