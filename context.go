package undo

import "github.com/enetx/g"

// Context is handed to every command execution.
// State holds the live application state that commands mutate.
// Data is a scratch area for values shared between commands (e.g. style flags);
// it is not captured by mementos.
type Context[S any] struct {
	State S
	Data  *g.MapSafe[g.String, any]

	system *System[S]
}

func newContext[S any](sys *System[S], initial S) *Context[S] {
	return &Context[S]{
		State:  initial,
		Data:   g.NewMapSafe[g.String, any](),
		system: sys,
	}
}

// System returns the system that owns this context.
// Undo and redo commands use it to move the history cursor.
func (c *Context[S]) System() *System[S] { return c.system }
