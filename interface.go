package undo

import "github.com/enetx/g"

// UndoableSystem is implemented by System and SyncSystem.
type UndoableSystem[S any] interface {
	Invoke(Command[S]) error
	InvokeTag(Tag, ...any) (bool, error)
	Group(Tag, ...Command[S]) error
	Undo(Command[S], ...int) bool
	Redo(Command[S], ...int) bool
	Erase(...int) int
	Clear()
	Reset()
	State() S
	Context() *Context[S]
	Size() int
	Empty() bool
	CanUndo() bool
	CanRedo() bool
	Position() int
	MaxSize() int
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
}

var (
	_ UndoableSystem[any] = (*System[any])(nil)
	_ UndoableSystem[any] = (*SyncSystem[any])(nil)
)
