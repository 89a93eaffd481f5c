package undo

const (
	// TagUndo is the tag of UndoCmd.
	TagUndo Tag = "undo"
	// TagRedo is the tag of RedoCmd.
	TagRedo Tag = "redo"
)

type (
	// ExecuteFunc applies a command's effect.
	ExecuteFunc[S any] func(ctx *Context[S]) error
	// SaveFunc returns the state stored in a command's memento.
	SaveFunc[S any] func(ctx *Context[S]) S
	// RestoreFunc reverses or replays a command using its memento.
	RestoreFunc[S any] func(ctx *Context[S], m *Memento[S])
)

// Func is a command assembled from functions.
//
// Without custom hooks it behaves as a full-snapshot command: Execute records the
// state held by the context before running, SaveState stores that snapshot, and
// Undo and Redo swap the context state with the memento state.
type Func[S any] struct {
	tag    Tag
	silent bool

	execute ExecuteFunc[S]
	save    SaveFunc[S]
	undo    RestoreFunc[S]
	redo    RestoreFunc[S]

	before S
}

// NewCommand creates a Func command with the given tag.
func NewCommand[S any](tag Tag) *Func[S] { return &Func[S]{tag: tag} }

// Apply creates a snapshot command that replaces the context state with fn(state).
func Apply[S any](tag Tag, fn func(S) S) *Func[S] {
	return NewCommand[S](tag).OnExecute(func(ctx *Context[S]) error {
		ctx.State = fn(ctx.State)
		return nil
	})
}

// OnExecute sets the effect of the command.
func (c *Func[S]) OnExecute(fn ExecuteFunc[S]) *Func[S] {
	c.execute = fn
	return c
}

// OnSave sets the function producing the memento state.
func (c *Func[S]) OnSave(fn SaveFunc[S]) *Func[S] {
	c.save = fn
	return c
}

// OnUndo sets the function reversing the command.
func (c *Func[S]) OnUndo(fn RestoreFunc[S]) *Func[S] {
	c.undo = fn
	return c
}

// OnRedo sets the function replaying the command.
func (c *Func[S]) OnRedo(fn RestoreFunc[S]) *Func[S] {
	c.redo = fn
	return c
}

// Silent excludes the command from the history.
func (c *Func[S]) Silent() *Func[S] {
	c.silent = true
	return c
}

// Tag returns the command tag.
func (c *Func[S]) Tag() Tag { return c.tag }

// Persistent reports whether the command is recorded in the history.
func (c *Func[S]) Persistent() bool { return !c.silent }

// Execute runs the effect after recording the current state.
func (c *Func[S]) Execute(ctx *Context[S]) error {
	c.before = ctx.State
	if c.execute == nil {
		return nil
	}

	return c.execute(ctx)
}

// SaveState returns a memento holding the state captured by the last Execute,
// or the result of the OnSave hook.
func (c *Func[S]) SaveState(ctx *Context[S]) *Memento[S] {
	if c.save != nil {
		return NewMemento[S](c, c.save(ctx))
	}

	return NewMemento[S](c, c.before)
}

// Undo reverses the command.
func (c *Func[S]) Undo(ctx *Context[S], m *Memento[S]) {
	if c.undo != nil {
		c.undo(ctx, m)
		return
	}

	swap(ctx, m)
}

// Redo replays the command.
func (c *Func[S]) Redo(ctx *Context[S], m *Memento[S]) {
	if c.redo != nil {
		c.redo(ctx, m)
		return
	}

	swap(ctx, m)
}

func swap[S any](ctx *Context[S], m *Memento[S]) { ctx.State, m.State = m.State, ctx.State }

// UndoCmd moves the history cursor back by Delta steps when invoked.
// It is never recorded in the history.
//
// Applied reports whether the last Execute moved the cursor. A request that does
// not fit in the history is rejected as a whole and leaves Applied false.
type UndoCmd[S any] struct {
	Delta   int
	Applied bool
}

// NewUndo creates an undo command. The optional delta defaults to 1.
func NewUndo[S any](delta ...int) *UndoCmd[S] { return &UndoCmd[S]{Delta: deltaOf(delta)} }

func (*UndoCmd[S]) Tag() Tag         { return TagUndo }
func (*UndoCmd[S]) Persistent() bool { return false }

func (c *UndoCmd[S]) Execute(ctx *Context[S]) error {
	c.Applied = ctx.System().Undo(c, c.Delta)
	return nil
}

func (c *UndoCmd[S]) SaveState(*Context[S]) *Memento[S] { return nil }
func (*UndoCmd[S]) Undo(*Context[S], *Memento[S])       {}
func (*UndoCmd[S]) Redo(*Context[S], *Memento[S])       {}

// RedoCmd moves the history cursor forward by Delta steps when invoked.
// It is never recorded in the history.
//
// Applied reports whether the last Execute moved the cursor. A request that does
// not fit in the history is rejected as a whole and leaves Applied false.
type RedoCmd[S any] struct {
	Delta   int
	Applied bool
}

// NewRedo creates a redo command. The optional delta defaults to 1.
func NewRedo[S any](delta ...int) *RedoCmd[S] { return &RedoCmd[S]{Delta: deltaOf(delta)} }

func (*RedoCmd[S]) Tag() Tag         { return TagRedo }
func (*RedoCmd[S]) Persistent() bool { return false }

func (c *RedoCmd[S]) Execute(ctx *Context[S]) error {
	c.Applied = ctx.System().Redo(c, c.Delta)
	return nil
}

func (c *RedoCmd[S]) SaveState(*Context[S]) *Memento[S] { return nil }
func (*RedoCmd[S]) Undo(*Context[S], *Memento[S])       {}
func (*RedoCmd[S]) Redo(*Context[S], *Memento[S])       {}

// deltaOf returns the optional delta argument, defaulting to 1.
func deltaOf(delta []int) int {
	if len(delta) > 0 {
		return delta[0]
	}

	return 1
}

var (
	_ Command[any] = (*Func[any])(nil)
	_ Command[any] = (*UndoCmd[any])(nil)
	_ Command[any] = (*RedoCmd[any])(nil)
)
