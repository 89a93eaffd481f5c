package undo

import "fmt"

// Phase names the command method in which an error occurred.
type Phase string

const (
	PhaseExecute   Phase = "Execute"
	PhaseSaveState Phase = "SaveState"
	PhaseUndo      Phase = "Undo"
	PhaseRedo      Phase = "Redo"
)

// ErrCommand is returned by Invoke when a command's Execute or SaveState method
// returns an error or panics. Nothing is recorded in the history in that case.
//
// A SaveState failure happens after Execute succeeded, so the effect of Execute
// stays in the context state without a memento to reverse it. The same holds for
// the failing child of a Composite; the children before it are rolled back.
//
// Observers also receive an ErrCommand with PhaseUndo or PhaseRedo when an undo
// or redo hook panics; the cursor is then left on the failing memento.
// It wraps the original error, allowing it to be inspected using functions like
// errors.Is and errors.As.
type ErrCommand struct {
	// Tag is the tag of the failing command.
	Tag Tag
	// Phase is the method that failed.
	Phase Phase
	// Err is the original error or the error created after recovering from a panic.
	Err error
}

func (e *ErrCommand) Error() string {
	return fmt.Sprintf("undo: command %q failed in %s: %v", e.Tag, e.Phase, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package.
func (e *ErrCommand) Unwrap() error { return e.Err }

// runExecute executes cmd, recovering from panics.
func runExecute[S any](cmd Command[S], ctx *Context[S]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return cmd.Execute(ctx)
}

// runSave asks cmd for its memento, recovering from panics.
func runSave[S any](cmd Command[S], ctx *Context[S]) (m *Memento[S], err error) {
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	return cmd.SaveState(ctx), nil
}

// runRestore runs a memento's undo or redo hook, recovering from panics.
func runRestore[S any](fn func(*Context[S]), ctx *Context[S]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	fn(ctx)

	return nil
}
