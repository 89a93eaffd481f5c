package undo

import (
	"sync"
	"time"

	"github.com/enetx/g"
)

type (
	// Tag identifies a command type. It is used by the Registry and shows up in
	// observer events, JSON views and DOT output.
	Tag g.String

	// Command is a reversible unit of work.
	//
	// Execute applies the effect to the context. SaveState is called right after a
	// successful Execute and returns a memento with enough information to reverse it
	// (nil means nothing to record). Undo reverses the effect and leaves the memento
	// describing the forward state; Redo is the mirror operation. Commands whose
	// Persistent method returns false are never stored in the history.
	Command[S any] interface {
		Tag() Tag
		Execute(ctx *Context[S]) error
		SaveState(ctx *Context[S]) *Memento[S]
		Undo(ctx *Context[S], m *Memento[S])
		Redo(ctx *Context[S], m *Memento[S])
		Persistent() bool
	}

	// DeltaUndoer is implemented by commands that handle multi-step undo themselves.
	// System.Undo delegates to it instead of walking the history.
	DeltaUndoer[S any] interface {
		UndoDelta(ctx *Context[S], delta int) bool
	}

	// DeltaRedoer is the redo counterpart of DeltaUndoer.
	DeltaRedoer[S any] interface {
		RedoDelta(ctx *Context[S], delta int) bool
	}

	// Builder creates a command from invocation arguments.
	Builder[S any] func(args ...any) Command[S]

	// Memento is a snapshot of state produced by a command.
	Memento[S any] struct {
		State     S
		command   Command[S]
		children  g.Slice[*Memento[S]]
		composite bool
		created   time.Time
	}

	// History is an ordered sequence of mementos with a cursor.
	// Entries before the cursor can be undone, entries at or after it can be redone.
	History[S any] struct {
		entries  g.Slice[*Memento[S]]
		position int
		maxSize  int
	}

	// Registry maps tags to command builders.
	Registry[S any] struct {
		builders *g.MapSafe[Tag, Builder[S]]
	}

	// System is the undoable command system. It executes commands against its
	// context and records their mementos in the history.
	// A System is not safe for concurrent use; see SyncSystem.
	System[S any] struct {
		initial  S
		ctx      *Context[S]
		history  *History[S]
		registry *Registry[S]
		observer Observer
	}

	// SyncSystem is a thread-safe wrapper around a System.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	SyncSystem[S any] struct {
		sys *System[S]
		mu  sync.RWMutex
	}
)
