package undo

import (
	"slices"

	"github.com/enetx/g"
)

// NewHistory creates an empty history. A maxSize of zero or less means the
// history is unbounded.
func NewHistory[S any](maxSize int) *History[S] {
	return &History[S]{
		entries: g.NewSlice[*Memento[S]](),
		maxSize: max(maxSize, 0),
	}
}

// Push appends m as the new tip of the history.
//
// Entries at or after the cursor are discarded first, since a fresh push starts a
// new branch. If the history is bounded and full, the oldest entries are evicted.
// After Push the cursor sits at the end, so there is nothing to redo.
// Push reports how many entries were truncated and evicted. A nil memento is ignored.
func (h *History[S]) Push(m *Memento[S]) (truncated, evicted int) {
	if m == nil {
		return 0, 0
	}

	if h.position != len(h.entries) {
		truncated = len(h.entries) - h.position
		clear(h.entries[h.position:])
		h.entries = h.entries[:h.position]
	}

	// Eviction only touches the front; the cursor is at the end here.
	if h.maxSize > 0 && len(h.entries) >= h.maxSize {
		evicted = len(h.entries) - h.maxSize + 1
		clear(h.entries[:evicted])
		h.entries = h.entries[evicted:]
	}

	h.entries = append(h.entries, m)
	h.position = len(h.entries)

	return truncated, evicted
}

// UndoOne moves the cursor one step toward the beginning.
// It returns false if the history is empty or the cursor is already at the beginning.
// The caller applies the memento now at the cursor; see Current.
func (h *History[S]) UndoOne() bool {
	if len(h.entries) == 0 || h.position == 0 {
		return false
	}

	h.position--

	return true
}

// RedoOne returns the memento at the cursor and advances the cursor past it.
// It returns None if the history is empty or the cursor is already at the end.
func (h *History[S]) RedoOne() g.Option[*Memento[S]] {
	if len(h.entries) == 0 || h.position == len(h.entries) {
		return g.None[*Memento[S]]()
	}

	m := h.entries[h.position]
	h.position++

	return g.Some(m)
}

// Current returns the memento at the cursor, i.e. the next one to redo.
func (h *History[S]) Current() g.Option[*Memento[S]] { return h.At(h.position) }

// PeekUndo returns the memento the next UndoOne would step over.
func (h *History[S]) PeekUndo() g.Option[*Memento[S]] { return h.At(h.position - 1) }

// PeekRedo returns the memento the next RedoOne would return.
func (h *History[S]) PeekRedo() g.Option[*Memento[S]] { return h.At(h.position) }

// At returns the memento at index i.
func (h *History[S]) At(i int) g.Option[*Memento[S]] {
	if i < 0 || i >= len(h.entries) {
		return g.None[*Memento[S]]()
	}

	return g.Some(h.entries[i])
}

// Entries returns a copy of all stored mementos, oldest first.
func (h *History[S]) Entries() g.Slice[*Memento[S]] { return h.entries.Clone() }

// Erase removes up to n entries immediately before the cursor and returns how
// many were removed. The redo-able entries stay addressable.
func (h *History[S]) Erase(n int) int {
	n = min(n, h.position)
	if n <= 0 {
		return 0
	}

	from := h.position - n
	h.entries = slices.Delete(h.entries, from, h.position)
	h.position = from

	return n
}

// Size returns the number of stored mementos.
func (h *History[S]) Size() int { return len(h.entries) }

// Empty reports whether the history holds no mementos.
func (h *History[S]) Empty() bool { return len(h.entries) == 0 }

// CanUndo reports whether the cursor can move toward the beginning.
func (h *History[S]) CanUndo() bool { return h.position != 0 }

// CanRedo reports whether the cursor can move toward the end.
func (h *History[S]) CanRedo() bool { return h.position != len(h.entries) }

// Position returns the cursor's distance from the beginning.
func (h *History[S]) Position() int { return h.position }

// MaxSize returns the retention bound, zero when unbounded.
func (h *History[S]) MaxSize() int { return h.maxSize }

// SetMaxSize changes the retention bound. Existing entries are not evicted
// until the next Push.
func (h *History[S]) SetMaxSize(n int) { h.maxSize = max(n, 0) }

// Clear removes all mementos and resets the cursor.
func (h *History[S]) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
	h.position = 0
}
