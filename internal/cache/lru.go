package cache

// ring is a circular recency list threaded through the entries. The
// sentinel's next is the most recently used entry, its prev the next
// eviction candidate. Callers synchronize.
type ring[K comparable, V any] struct {
	root entry[K, V]
}

func (r *ring[K, V]) init() {
	r.root.prev, r.root.next = &r.root, &r.root
}

// touch moves e to the front, linking it if it is not in the ring yet.
func (r *ring[K, V]) touch(e *entry[K, V]) {
	if r.root.next == e {
		return
	}
	if e.next != nil {
		r.unlink(e)
	}
	e.prev, e.next = &r.root, r.root.next
	r.root.next.prev = e
	r.root.next = e
}

// oldest returns the least recently used entry, nil if the ring is empty.
func (r *ring[K, V]) oldest() *entry[K, V] {
	if r.root.prev == &r.root {
		return nil
	}
	return r.root.prev
}

func (r *ring[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
}
