package undo_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/enetx/undo"
)

func TestSystem_WorkedExample(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"), appendText("b"), appendText("c"), appendText("d"))

	assertEqual(t, sys.Size(), 4)
	assertEqual(t, sys.Position(), 4)
	assertEqual(t, sys.State(), "abcd")

	undo, redo := NewUndo[string](), NewRedo[string]()

	steps := []struct {
		cmd      Command[string]
		position int
		state    string
	}{
		{undo, 3, "abc"},
		{undo, 2, "ab"},
		{redo, 3, "abc"},
		{undo, 2, "ab"},
		{undo, 1, "a"},
	}

	for i, step := range steps {
		assertNoError(t, sys.Invoke(step.cmd))
		if sys.Position() != step.position || sys.State() != step.state {
			t.Fatalf("step %d: expected (%d, %q), got (%d, %q)",
				i, step.position, step.state, sys.Position(), sys.State())
		}
	}

	assertEqual(t, sys.Size(), 4)
}

func TestSystem_SilentCommandsAreNotStored(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"), appendText("b"))

	ran := false
	silent := NewCommand[string]("peek").
		OnExecute(func(*Context[string]) error { ran = true; return nil }).
		Silent()

	invokeAll(t, sys, NewUndo[string](), NewRedo[string](), NewUndo[string](), silent)

	assertTrue(t, ran)
	assertFalse(t, silent.Persistent())
	assertEqual(t, sys.Size(), 2)
	assertEqual(t, sys.Position(), 1)
}

func TestSystem_UndoRedoAtBoundaries(t *testing.T) {
	sys := New("")
	assertFalse(t, sys.Undo(nil))
	assertFalse(t, sys.Redo(nil))

	invokeAll(t, sys, appendText("a"))
	assertFalse(t, sys.Redo(nil))
	assertTrue(t, sys.Undo(nil))
	assertFalse(t, sys.Undo(nil))
	assertEqual(t, sys.State(), "")
	assertTrue(t, sys.Redo(nil))
	assertEqual(t, sys.State(), "a")
}

func TestSystem_DeltaIsRejectedAsAWhole(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"), appendText("b"), appendText("c"))

	assertFalse(t, sys.Undo(nil, 4))
	assertEqual(t, sys.Position(), 3)
	assertEqual(t, sys.State(), "abc")

	assertFalse(t, sys.Undo(nil, 0))
	assertFalse(t, sys.Undo(nil, -1))

	assertTrue(t, sys.Undo(nil, 3))
	assertEqual(t, sys.Position(), 0)
	assertEqual(t, sys.State(), "")

	assertFalse(t, sys.Redo(nil, 4))
	assertEqual(t, sys.Position(), 0)

	assertTrue(t, sys.Redo(nil, 2))
	assertEqual(t, sys.Position(), 2)
	assertEqual(t, sys.State(), "ab")
}

func TestSystem_UndoCommandWithDelta(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"), appendText("b"), appendText("c"))

	invokeAll(t, sys, NewUndo[string](2))
	assertEqual(t, sys.Position(), 1)
	assertEqual(t, sys.State(), "a")

	// Out of range: ignored as a whole.
	invokeAll(t, sys, NewRedo[string](3))
	assertEqual(t, sys.Position(), 1)

	invokeAll(t, sys, NewRedo[string](2))
	assertEqual(t, sys.Position(), 3)
	assertEqual(t, sys.State(), "abc")
}

// jumpCmd handles multi-step undo and redo on its own.
type jumpCmd struct {
	undoCalls []int
	redoCalls []int
}

func (*jumpCmd) Tag() Tag                                    { return "jump" }
func (*jumpCmd) Persistent() bool                            { return false }
func (*jumpCmd) Execute(*Context[string]) error              { return nil }
func (*jumpCmd) SaveState(*Context[string]) *Memento[string] { return nil }
func (*jumpCmd) Undo(*Context[string], *Memento[string])     {}
func (*jumpCmd) Redo(*Context[string], *Memento[string])     {}

func (c *jumpCmd) UndoDelta(_ *Context[string], delta int) bool {
	c.undoCalls = append(c.undoCalls, delta)
	return true
}

func (c *jumpCmd) RedoDelta(_ *Context[string], delta int) bool {
	c.redoCalls = append(c.redoCalls, delta)
	return true
}

func TestSystem_DeltaHooksAreDelegated(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"))

	jump := &jumpCmd{}
	assertTrue(t, sys.Undo(jump, 7))
	assertTrue(t, sys.Redo(jump))

	assertEqual(t, len(jump.undoCalls), 1)
	assertEqual(t, jump.undoCalls[0], 7)
	assertEqual(t, len(jump.redoCalls), 1)
	assertEqual(t, jump.redoCalls[0], 1)

	// The history was not touched.
	assertEqual(t, sys.Position(), 1)
	assertEqual(t, sys.State(), "a")
}

func TestSystem_NewCommandBranchTruncatesFuture(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"), appendText("b"), appendText("c"))

	assertTrue(t, sys.Undo(nil, 2))
	invokeAll(t, sys, appendText("d"))

	assertEqual(t, sys.State(), "ad")
	assertEqual(t, sys.Size(), 2)
	assertEqual(t, sys.Position(), 2)
	assertFalse(t, sys.CanRedo())
	assertTrue(t, sys.CanUndo())

	assertTrue(t, sys.Undo(nil, 2))
	assertEqual(t, sys.State(), "")
}

func TestSystem_BoundedHistory(t *testing.T) {
	sys := New("").SetMaxSize(2)
	invokeAll(t, sys, appendText("a"), appendText("b"), appendText("c"))

	assertEqual(t, sys.MaxSize(), 2)
	assertEqual(t, sys.Size(), 2)
	assertTrue(t, sys.Undo(nil))
	assertTrue(t, sys.Undo(nil))
	assertFalse(t, sys.Undo(nil))
	assertEqual(t, sys.State(), "a")
}

var errBoom = errors.New("boom")

func TestSystem_ExecuteErrorIsNotRecorded(t *testing.T) {
	sys := New("")
	failing := NewCommand[string]("fail").OnExecute(func(*Context[string]) error { return errBoom })

	err := sys.Invoke(failing)
	assertError(t, err)
	assertTrue(t, errors.Is(err, errBoom))

	var cmdErr *ErrCommand
	assertTrue(t, errors.As(err, &cmdErr))
	assertEqual(t, cmdErr.Tag, Tag("fail"))
	assertEqual(t, cmdErr.Phase, PhaseExecute)
	assertTrue(t, sys.Empty())
}

func TestSystem_PanicRecovery(t *testing.T) {
	sys := New("")

	err := sys.Invoke(NewCommand[string]("explode").OnExecute(func(*Context[string]) error {
		panic("something went wrong")
	}))
	assertError(t, err)
	assertTrue(t, strings.Contains(err.Error(), "panic"))

	err = sys.Invoke(NewCommand[string]("bad-save").OnSave(func(*Context[string]) string {
		panic("cannot snapshot")
	}))
	assertError(t, err)

	var cmdErr *ErrCommand
	assertTrue(t, errors.As(err, &cmdErr))
	assertEqual(t, cmdErr.Phase, PhaseSaveState)
	assertTrue(t, sys.Empty())
}

func TestSystem_NilCommandIsNoop(t *testing.T) {
	sys := New("")
	assertNoError(t, sys.Invoke(nil))

	noop := NewCommand[string]("noop")
	assertNoError(t, sys.Invoke(noop))
	assertEqual(t, sys.Size(), 1)

	assertNoError(t, sys.Invoke(NewUndo[string]()))
	assertNoError(t, sys.Invoke(NewUndo[string]()))
	assertEqual(t, sys.Position(), 0)
}

func TestSystem_CustomHooks(t *testing.T) {
	sys := New(0)

	inc := func(n int) *Func[int] {
		return NewCommand[int]("add").
			OnExecute(func(ctx *Context[int]) error { ctx.State += n; return nil }).
			OnSave(func(*Context[int]) int { return n }).
			OnUndo(func(ctx *Context[int], m *Memento[int]) { ctx.State -= m.State }).
			OnRedo(func(ctx *Context[int], m *Memento[int]) { ctx.State += m.State })
	}

	invokeAll(t, sys, inc(1), inc(10), inc(100))
	assertEqual(t, sys.State(), 111)

	assertTrue(t, sys.Undo(nil, 2))
	assertEqual(t, sys.State(), 1)

	assertTrue(t, sys.Redo(nil))
	assertEqual(t, sys.State(), 11)

	m := sys.History().PeekUndo().Some()
	assertEqual(t, m.State, 10)
	assertEqual(t, m.Tag(), Tag("add"))
	assertFalse(t, m.Composite())
}

func TestSystem_InvokeTag(t *testing.T) {
	sys := New("").Register("append", func(args ...any) Command[string] {
		if len(args) == 0 {
			return nil
		}

		return appendText(fmt.Sprint(args...))
	})

	ok, err := sys.InvokeTag("append", "hello")
	assertTrue(t, ok)
	assertNoError(t, err)
	assertEqual(t, sys.State(), "hello")

	ok, err = sys.InvokeTag("missing", "x")
	assertFalse(t, ok)
	assertNoError(t, err)

	ok, err = sys.InvokeTag("append")
	assertFalse(t, ok)
	assertNoError(t, err)

	assertEqual(t, sys.Size(), 1)
}

func TestSystem_Erase(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"), appendText("b"), appendText("c"))

	assertEqual(t, sys.Erase(), 1)
	assertEqual(t, sys.Size(), 2)
	assertEqual(t, sys.Position(), 2)
	assertEqual(t, sys.State(), "abc")

	assertEqual(t, sys.Erase(10), 2)
	assertTrue(t, sys.Empty())
	assertFalse(t, sys.CanUndo())
}

func TestSystem_ResetAndClear(t *testing.T) {
	sys := New("start")
	sys.Context().Data.Set("bold", true)
	invokeAll(t, sys, appendText("!"))

	sys.Clear()
	assertTrue(t, sys.Empty())
	assertEqual(t, sys.State(), "start!")

	invokeAll(t, sys, appendText("?"))
	sys.Reset()
	assertTrue(t, sys.Empty())
	assertEqual(t, sys.State(), "start")
	assertTrue(t, sys.Context().Data.Get("bold").IsNone())
}

func TestSystem_Clone(t *testing.T) {
	template := New("").SetMaxSize(3).Register("append", func(args ...any) Command[string] {
		return appendText(fmt.Sprint(args...))
	})

	s1 := template.Clone()
	s2 := template.Clone()

	ok, err := s1.InvokeTag("append", "x")
	assertTrue(t, ok)
	assertNoError(t, err)

	assertEqual(t, s1.State(), "x")
	assertEqual(t, s2.State(), "")
	assertEqual(t, template.State(), "")
	assertEqual(t, s2.MaxSize(), 3)
	assertTrue(t, s2.Registry().Contains("append"))
	assertTrue(t, s1.Context().System() == s1)
}

func TestSystem_PanickingUndoHookKeepsCursorInStep(t *testing.T) {
	rec := &recorder{}
	sys := New("").Observe(rec)

	fragile := appendText("b").OnUndo(func(*Context[string], *Memento[string]) { panic("boom") })
	invokeAll(t, sys, appendText("a"), fragile, appendText("c"))

	assertFalse(t, sys.Undo(nil, 2))
	assertEqual(t, sys.Position(), 2)
	assertEqual(t, sys.State(), "ab")

	last := rec.events[len(rec.events)-1]
	assertEqual(t, last.Kind, EventUndo)
	assertEqual(t, last.Tag, Tag("append b"))

	var cmdErr *ErrCommand
	assertTrue(t, errors.As(last.Err, &cmdErr))
	assertEqual(t, cmdErr.Phase, PhaseUndo)

	undo := NewUndo[string]()
	assertNoError(t, sys.Invoke(undo))
	assertFalse(t, undo.Applied)
	assertEqual(t, sys.Position(), 2)
	assertEqual(t, sys.State(), "ab")
}

func TestSystem_PanickingRedoHookKeepsCursorInStep(t *testing.T) {
	sys := New("")

	fragile := appendText("b").OnRedo(func(*Context[string], *Memento[string]) { panic("boom") })
	invokeAll(t, sys, appendText("a"), fragile)

	assertTrue(t, sys.Undo(nil, 2))
	assertFalse(t, sys.Redo(nil, 2))
	assertEqual(t, sys.Position(), 1)
	assertEqual(t, sys.State(), "a")
	assertTrue(t, sys.CanRedo())
}

func TestSystem_UndoCommandReportsOutcome(t *testing.T) {
	sys := New("")
	invokeAll(t, sys, appendText("a"))

	undo, redo := NewUndo[string](), NewRedo[string](2)

	assertNoError(t, sys.Invoke(undo))
	assertTrue(t, undo.Applied)

	assertNoError(t, sys.Invoke(undo))
	assertFalse(t, undo.Applied)

	assertNoError(t, sys.Invoke(redo))
	assertFalse(t, redo.Applied)
	assertEqual(t, sys.Position(), 0)
}

func TestSystem_SaveStateFailureKeepsExecutedEffect(t *testing.T) {
	sys := New("x")

	err := sys.Invoke(appendText("y").OnSave(func(*Context[string]) string { panic("cannot snapshot") }))

	var cmdErr *ErrCommand
	assertTrue(t, errors.As(err, &cmdErr))
	assertEqual(t, cmdErr.Phase, PhaseSaveState)
	assertEqual(t, sys.State(), "xy")
	assertTrue(t, sys.Empty())
}
