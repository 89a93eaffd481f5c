package undo

import (
	"encoding/json"
	"time"

	"github.com/enetx/g"
)

// HistoryView is a read-only, serializable view of a System and its history.
// It is meant for inspection and debugging; there is no way to load it back.
type HistoryView[S any] struct {
	State    S                     `json:"state"`
	Position int                   `json:"position"`
	Size     int                   `json:"size"`
	MaxSize  int                   `json:"max_size,omitempty"`
	Entries  g.Slice[EntryView[S]] `json:"entries"`
}

// EntryView describes one stored memento.
type EntryView[S any] struct {
	Index    int       `json:"index"`
	Tag      Tag       `json:"tag,omitempty"`
	State    S         `json:"state"`
	Children int       `json:"children,omitempty"`
	Undoable bool      `json:"undoable"`
	Created  time.Time `json:"created"`
}

// View builds a HistoryView of the system.
func (s *System[S]) View() HistoryView[S] {
	entries := make(g.Slice[EntryView[S]], 0, s.history.Size())

	for i, m := range s.history.entries {
		entries.Push(EntryView[S]{
			Index:    i,
			Tag:      m.Tag(),
			State:    m.State,
			Children: len(m.children),
			Undoable: i < s.history.position,
			Created:  m.created,
		})
	}

	return HistoryView[S]{
		State:    s.ctx.State,
		Position: s.history.position,
		Size:     s.history.Size(),
		MaxSize:  s.history.maxSize,
		Entries:  entries,
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (s *System[S]) MarshalJSON() ([]byte, error) { return json.Marshal(s.View()) }
