package undo

import (
	"fmt"

	"github.com/enetx/g"
)

// Composite groups child commands into one undoable unit.
// Its memento holds the children's own mementos, so every child is undone and
// redone with its own state format.
type Composite[S any] struct {
	tag      Tag
	commands g.Slice[Command[S]]
	pending  g.Slice[*Memento[S]]
}

// NewComposite creates a composite command from cmds.
func NewComposite[S any](tag Tag, cmds ...Command[S]) *Composite[S] {
	c := &Composite[S]{tag: tag, commands: g.NewSlice[Command[S]]()}
	for _, cmd := range cmds {
		c.Add(cmd)
	}

	return c
}

// Add appends a child command. Nil commands are skipped.
func (c *Composite[S]) Add(cmd Command[S]) *Composite[S] {
	if cmd != nil {
		c.commands.Push(cmd)
	}

	return c
}

// Commands returns a copy of the child commands in insertion order.
func (c *Composite[S]) Commands() g.Slice[Command[S]] { return c.commands.Clone() }

// Len returns the number of child commands.
func (c *Composite[S]) Len() int { return len(c.commands) }

// Empty reports whether the composite has no children.
func (c *Composite[S]) Empty() bool { return len(c.commands) == 0 }

// Tag returns the composite's tag.
func (c *Composite[S]) Tag() Tag { return c.tag }

// Persistent always returns true.
func (*Composite[S]) Persistent() bool { return true }

// Execute runs the children in insertion order, capturing each persistent
// child's memento as soon as it has run. If a child fails, the children that
// already ran are undone in reverse order and the step error is returned.
func (c *Composite[S]) Execute(ctx *Context[S]) error {
	c.pending = g.NewSlice[*Memento[S]]()

	for i, cmd := range c.commands {
		if err := runExecute(cmd, ctx); err != nil {
			c.rollback(ctx)
			return fmt.Errorf("step %d (%s): %w", i, cmd.Tag(), err)
		}

		if !cmd.Persistent() {
			continue
		}

		m, err := runSave(cmd, ctx)
		if err != nil {
			c.rollback(ctx)
			return fmt.Errorf("step %d (%s): saving state: %w", i, cmd.Tag(), err)
		}

		if m != nil {
			c.pending.Push(m)
		}
	}

	return nil
}

// rollback undoes the children captured so far, newest first.
func (c *Composite[S]) rollback(ctx *Context[S]) {
	for i := len(c.pending) - 1; i >= 0; i-- {
		c.pending[i].undo(ctx)
	}

	c.pending = nil
}

// SaveState returns a composite memento owning the mementos captured by the last
// Execute, or nil if no child produced one.
func (c *Composite[S]) SaveState(*Context[S]) *Memento[S] {
	if len(c.pending) == 0 {
		return nil
	}

	m := NewCompositeMemento[S](c, c.pending...)
	c.pending = nil

	return m
}

// Undo reverses the children in reverse order.
func (*Composite[S]) Undo(ctx *Context[S], m *Memento[S]) {
	for i := len(m.children) - 1; i >= 0; i-- {
		m.children[i].undo(ctx)
	}
}

// Redo replays the children in insertion order.
func (*Composite[S]) Redo(ctx *Context[S], m *Memento[S]) {
	for _, child := range m.children {
		child.redo(ctx)
	}
}

var _ Command[any] = (*Composite[any])(nil)
