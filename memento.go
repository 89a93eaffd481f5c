package undo

import (
	"time"

	"github.com/enetx/g"
)

// NewMemento creates a memento for state produced by cmd. cmd may be nil for
// mementos pushed straight into a History.
func NewMemento[S any](cmd Command[S], state S) *Memento[S] {
	return &Memento[S]{
		State:   state,
		command: cmd,
		created: time.Now(),
	}
}

// NewCompositeMemento creates a memento that owns the mementos of a composite's children.
func NewCompositeMemento[S any](cmd Command[S], children ...*Memento[S]) *Memento[S] {
	m := NewMemento(cmd, *new(S))
	m.children = g.SliceOf(children...)
	m.composite = true

	return m
}

// Command returns the command that produced the memento, or nil.
func (m *Memento[S]) Command() Command[S] { return m.command }

// Tag returns the tag of the producing command, or an empty tag.
func (m *Memento[S]) Tag() Tag {
	if m.command == nil {
		return ""
	}

	return m.command.Tag()
}

// Children returns the child mementos of a composite memento.
func (m *Memento[S]) Children() g.Slice[*Memento[S]] { return m.children.Clone() }

// Composite reports whether the memento was produced by a composite command.
func (m *Memento[S]) Composite() bool { return m.composite }

// Created returns the time the memento was captured.
func (m *Memento[S]) Created() time.Time { return m.created }

// undo reverses the memento through its producing command.
func (m *Memento[S]) undo(ctx *Context[S]) {
	if m.command != nil {
		m.command.Undo(ctx, m)
	}
}

// redo replays the memento through its producing command.
func (m *Memento[S]) redo(ctx *Context[S]) {
	if m.command != nil {
		m.command.Redo(ctx, m)
	}
}
