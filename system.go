// Package undo provides an in-process undo/redo engine built on the Command and
// Memento patterns. A System executes commands against a shared Context, records
// the mementos they produce in a linear History and moves a cursor backward and
// forward through it. It is built with types and utilities from the
// github.com/enetx/g library.
package undo

import "github.com/enetx/g"

// New creates a System whose context starts with the given state and whose
// history is unbounded.
func New[S any](initial S) *System[S] {
	s := &System[S]{
		initial:  initial,
		history:  NewHistory[S](0),
		registry: NewRegistry[S](),
		observer: nopObserver{},
	}

	s.ctx = newContext(s, initial)

	return s
}

// Clone creates a new System with the same configuration (registry, observer,
// history bound) but a fresh state and an empty history.
func (s *System[S]) Clone() *System[S] {
	c := &System[S]{
		initial:  s.initial,
		history:  NewHistory[S](s.history.MaxSize()),
		registry: s.registry,
		observer: s.observer,
	}

	c.ctx = newContext(c, s.initial)

	return c
}

// SetMaxSize bounds the number of stored mementos. Zero or less means unbounded.
// Existing mementos are only evicted by the next push.
func (s *System[S]) SetMaxSize(n int) *System[S] {
	s.history.SetMaxSize(n)
	return s
}

// Observe installs an observer for history events. A nil observer disables observation.
func (s *System[S]) Observe(o Observer) *System[S] {
	if o == nil {
		o = nopObserver{}
	}

	s.observer = o

	return s
}

// Register binds a command builder to tag in the system's registry.
func (s *System[S]) Register(tag Tag, b Builder[S]) *System[S] {
	s.registry.Register(tag, b)
	return s
}

// UseRegistry replaces the system's registry, e.g. to share one between systems.
func (s *System[S]) UseRegistry(r *Registry[S]) *System[S] {
	if r != nil {
		s.registry = r
	}

	return s
}

// Registry returns the system's command registry.
func (s *System[S]) Registry() *Registry[S] { return s.registry }

// Context returns the context handed to commands.
func (s *System[S]) Context() *Context[S] { return s.ctx }

// State returns the current application state.
func (s *System[S]) State() S { return s.ctx.State }

// History returns the underlying history store.
func (s *System[S]) History() *History[S] { return s.history }

// Invoke executes cmd against the context and, unless the command is silent,
// records the memento it produces. A nil command is a no-op.
//
// If Execute or SaveState fails or panics, an *ErrCommand is returned and the
// history is left untouched.
func (s *System[S]) Invoke(cmd Command[S]) error {
	if cmd == nil {
		return nil
	}

	if err := runExecute(cmd, s.ctx); err != nil {
		return s.invoked(cmd, false, &ErrCommand{Tag: cmd.Tag(), Phase: PhaseExecute, Err: err})
	}

	if !cmd.Persistent() {
		return s.invoked(cmd, false, nil)
	}

	m, err := runSave(cmd, s.ctx)
	if err != nil {
		return s.invoked(cmd, false, &ErrCommand{Tag: cmd.Tag(), Phase: PhaseSaveState, Err: err})
	}

	if m == nil {
		return s.invoked(cmd, false, nil)
	}

	truncated, evicted := s.history.Push(m)

	if truncated > 0 {
		s.emit(EventTruncate, "", truncated)
	}

	if evicted > 0 {
		s.emit(EventEvict, "", evicted)
	}

	return s.invoked(cmd, true, nil)
}

// InvokeTag builds a command through the registry and invokes it.
// It reports false, and invokes nothing, if the tag is unknown.
func (s *System[S]) InvokeTag(tag Tag, args ...any) (bool, error) {
	cmd := s.registry.Create(tag, args...)
	if cmd.IsNone() {
		return false, nil
	}

	return true, s.Invoke(cmd.Some())
}

// Group invokes cmds as a single undoable unit.
func (s *System[S]) Group(tag Tag, cmds ...Command[S]) error {
	c := NewComposite(tag, cmds...)
	if c.Empty() {
		return nil
	}

	return s.Invoke(c)
}

// Undo moves the cursor delta steps (default 1) toward the beginning, reversing
// each memento stepped over through its producing command.
//
// If cmd implements DeltaUndoer the request is delegated to it. Otherwise the
// request is rejected as a whole, and false returned, unless the full delta fits
// in the history. cmd may be nil.
//
// If a memento's undo hook panics, the cursor stays in front of that memento,
// the steps already taken are kept and false is returned.
func (s *System[S]) Undo(cmd Command[S], delta ...int) bool {
	d := deltaOf(delta)

	if du, ok := cmd.(DeltaUndoer[S]); ok {
		return du.UndoDelta(s.ctx, d)
	}

	if d < 1 || s.history.Position()-d < 0 {
		s.emit(EventReject, tagOf(cmd), d)
		return false
	}

	for range d {
		s.history.UndoOne()

		m := s.history.Current().Some()
		if err := runRestore(m.undo, s.ctx); err != nil {
			s.history.RedoOne()
			s.failed(EventUndo, m.Tag(), &ErrCommand{Tag: m.Tag(), Phase: PhaseUndo, Err: err})

			return false
		}

		s.emit(EventUndo, m.Tag(), 1)
	}

	return true
}

// Redo moves the cursor delta steps (default 1) toward the end, replaying each
// memento through its producing command.
//
// If cmd implements DeltaRedoer the request is delegated to it. Otherwise the
// request is rejected as a whole, and false returned, unless the full delta fits
// in the history. cmd may be nil. A panicking redo hook stops the walk like in Undo.
func (s *System[S]) Redo(cmd Command[S], delta ...int) bool {
	d := deltaOf(delta)

	if dr, ok := cmd.(DeltaRedoer[S]); ok {
		return dr.RedoDelta(s.ctx, d)
	}

	if d < 1 || s.history.Position()+d > s.history.Size() {
		s.emit(EventReject, tagOf(cmd), d)
		return false
	}

	for range d {
		m := s.history.RedoOne().Some()
		if err := runRestore(m.redo, s.ctx); err != nil {
			s.history.UndoOne()
			s.failed(EventRedo, m.Tag(), &ErrCommand{Tag: m.Tag(), Phase: PhaseRedo, Err: err})

			return false
		}

		s.emit(EventRedo, m.Tag(), 1)
	}

	return true
}

// Erase removes up to n (default 1) mementos immediately before the cursor and
// returns how many were removed. The state is not changed.
func (s *System[S]) Erase(n ...int) int {
	erased := s.history.Erase(deltaOf(n))
	if erased > 0 {
		s.emit(EventErase, "", erased)
	}

	return erased
}

// Clear drops the whole history. The current state is kept.
func (s *System[S]) Clear() {
	count := s.history.Size()
	s.history.Clear()
	s.emit(EventClear, "", count)
}

// Reset restores the initial state, clears the context data and the history.
func (s *System[S]) Reset() {
	s.ctx.State = s.initial
	s.ctx.Data = g.NewMapSafe[g.String, any]()
	s.Clear()
}

// Size returns the number of stored mementos.
func (s *System[S]) Size() int { return s.history.Size() }

// Empty reports whether no memento is stored.
func (s *System[S]) Empty() bool { return s.history.Empty() }

// CanUndo reports whether there is something to undo.
func (s *System[S]) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether there is something to redo.
func (s *System[S]) CanRedo() bool { return s.history.CanRedo() }

// Position returns the history cursor.
func (s *System[S]) Position() int { return s.history.Position() }

// MaxSize returns the history bound, zero when unbounded.
func (s *System[S]) MaxSize() int { return s.history.MaxSize() }

// Sync returns a thread-safe wrapper around the system.
// The returned SyncSystem owns the system; it should not be used directly afterwards.
func (s *System[S]) Sync() *SyncSystem[S] { return &SyncSystem[S]{sys: s} }

func (s *System[S]) invoked(cmd Command[S], persisted bool, err error) error {
	s.observer.Observe(Event{
		Kind:      EventInvoke,
		Tag:       cmd.Tag(),
		Position:  s.history.Position(),
		Size:      s.history.Size(),
		Persisted: persisted,
		Err:       err,
	})

	return err
}

func (s *System[S]) emit(kind EventKind, tag Tag, count int) {
	s.observer.Observe(Event{
		Kind:     kind,
		Tag:      tag,
		Position: s.history.Position(),
		Size:     s.history.Size(),
		Count:    count,
	})
}

func (s *System[S]) failed(kind EventKind, tag Tag, err error) {
	s.observer.Observe(Event{
		Kind:     kind,
		Tag:      tag,
		Position: s.history.Position(),
		Size:     s.history.Size(),
		Err:      err,
	})
}

func tagOf[S any](cmd Command[S]) Tag {
	if cmd == nil {
		return ""
	}

	return cmd.Tag()
}
