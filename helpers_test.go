package undo_test

import (
	"testing"

	. "github.com/enetx/undo"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func assertTrue(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true, got false")
	}
}

func assertFalse(t *testing.T, cond bool) {
	t.Helper()
	if cond {
		t.Fatalf("expected false, got true")
	}
}

// appendText returns a snapshot command appending text to a string document.
func appendText(text string) *Func[string] {
	return Apply(Tag("append "+text), func(doc string) string { return doc + text })
}

// invokeAll invokes cmds in order and fails the test on the first error.
func invokeAll[S any](t *testing.T, sys *System[S], cmds ...Command[S]) {
	t.Helper()
	for _, cmd := range cmds {
		assertNoError(t, sys.Invoke(cmd))
	}
}
