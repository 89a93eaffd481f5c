package undo

import "github.com/enetx/g"

// Invoke is the thread-safe version of System.Invoke.
func (ss *SyncSystem[S]) Invoke(cmd Command[S]) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.sys.Invoke(cmd)
}

// InvokeTag is the thread-safe version of System.InvokeTag.
func (ss *SyncSystem[S]) InvokeTag(tag Tag, args ...any) (bool, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.sys.InvokeTag(tag, args...)
}

// Group is the thread-safe version of System.Group.
func (ss *SyncSystem[S]) Group(tag Tag, cmds ...Command[S]) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.sys.Group(tag, cmds...)
}

// Undo is the thread-safe version of System.Undo.
func (ss *SyncSystem[S]) Undo(cmd Command[S], delta ...int) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.sys.Undo(cmd, delta...)
}

// Redo is the thread-safe version of System.Redo.
func (ss *SyncSystem[S]) Redo(cmd Command[S], delta ...int) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.sys.Redo(cmd, delta...)
}

// Erase is the thread-safe version of System.Erase.
func (ss *SyncSystem[S]) Erase(n ...int) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.sys.Erase(n...)
}

// Clear is the thread-safe version of System.Clear.
func (ss *SyncSystem[S]) Clear() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sys.Clear()
}

// Reset is the thread-safe version of System.Reset.
func (ss *SyncSystem[S]) Reset() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sys.Reset()
}

// State is the thread-safe version of System.State.
func (ss *SyncSystem[S]) State() S {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.State()
}

// Context is the thread-safe version of System.Context.
// WARNING: the returned context is shared with commands; mutating it outside
// of a command bypasses the lock.
func (ss *SyncSystem[S]) Context() *Context[S] {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.Context()
}

// Size is the thread-safe version of System.Size.
func (ss *SyncSystem[S]) Size() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.Size()
}

// Empty is the thread-safe version of System.Empty.
func (ss *SyncSystem[S]) Empty() bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.Empty()
}

// CanUndo is the thread-safe version of System.CanUndo.
func (ss *SyncSystem[S]) CanUndo() bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.CanUndo()
}

// CanRedo is the thread-safe version of System.CanRedo.
func (ss *SyncSystem[S]) CanRedo() bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.CanRedo()
}

// Position is the thread-safe version of System.Position.
func (ss *SyncSystem[S]) Position() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.Position()
}

// MaxSize is the thread-safe version of System.MaxSize.
func (ss *SyncSystem[S]) MaxSize() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.MaxSize()
}

// ToDOT is the thread-safe version of System.ToDOT.
func (ss *SyncSystem[S]) ToDOT() g.String {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// rendering of the system's history view.
func (ss *SyncSystem[S]) MarshalJSON() ([]byte, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.sys.MarshalJSON()
}
