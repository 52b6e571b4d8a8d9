package core

// index is an offset into a non-empty slice of length last+1. Its value
// can never leave [0, last], so reading the slice through it cannot fail.
type index struct {
	value int
	last  int
}

func (i *index) increment() bool {
	if i.value >= i.last {
		return false
	}
	i.value++
	return true
}

func (i *index) decrement() bool {
	if i.value <= 0 {
		return false
	}
	i.value--
	return true
}

// atEnd reports whether the index points at the last element.
func (i index) atEnd() bool {
	return i.value == i.last
}

// History is a linear undo history of snapshots.
//
// There are never two successive entries that are equal. Saving while the
// cursor is not on the newest entry discards every entry after the cursor.
type History[T comparable] struct {
	entries []T
	cursor  index
	limit   int
}

// NewHistory creates a history holding only initial.
func NewHistory[T comparable](initial T) *History[T] {
	return &History[T]{entries: []T{initial}}
}

// SetLimit bounds the number of entries kept; the oldest are dropped first.
// A limit below 1 means unlimited.
func (h *History[T]) SetLimit(limit int) {
	h.limit = limit
	h.trim()
}

// Current returns the entry under the cursor.
func (h *History[T]) Current() T {
	return h.entries[h.cursor.value]
}

// Save records value if it differs from the entry under the cursor and
// reports whether it did.
func (h *History[T]) Save(value T) bool {
	if value == h.Current() {
		return false
	}
	if !h.cursor.atEnd() {
		h.entries = h.entries[:h.cursor.value+1]
	}
	h.entries = append(h.entries, value)
	h.cursor = index{value: len(h.entries) - 1, last: len(h.entries) - 1}
	h.trim()
	return true
}

// Undo moves one entry back and returns it. It returns false, leaving the
// cursor unchanged, at the oldest entry.
func (h *History[T]) Undo() (T, bool) {
	if !h.cursor.decrement() {
		var zero T
		return zero, false
	}
	return h.Current(), true
}

// Redo moves one entry forward and returns it. It returns false, leaving the
// cursor unchanged, at the newest entry.
func (h *History[T]) Redo() (T, bool) {
	if !h.cursor.increment() {
		var zero T
		return zero, false
	}
	return h.Current(), true
}

// Len returns the number of entries.
func (h *History[T]) Len() int {
	return len(h.entries)
}

// Position returns the offset of the cursor.
func (h *History[T]) Position() int {
	return h.cursor.value
}

// Entries returns a copy of every entry, oldest first.
func (h *History[T]) Entries() []T {
	out := make([]T, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History[T]) trim() {
	if h.limit < 1 || len(h.entries) <= h.limit {
		return
	}
	drop := len(h.entries) - h.limit
	h.entries = append(h.entries[:0:0], h.entries[drop:]...)
	h.cursor = index{value: max(h.cursor.value-drop, 0), last: len(h.entries) - 1}
}
