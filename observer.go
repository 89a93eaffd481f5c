package undo

import (
	"context"
	"io"
	"log/slog"
)

// EventKind classifies an Event.
type EventKind int

const (
	// EventInvoke is emitted after a command was invoked, successfully or not.
	EventInvoke EventKind = iota
	// EventUndo is emitted for every memento stepped back over.
	EventUndo
	// EventRedo is emitted for every memento replayed.
	EventRedo
	// EventReject is emitted when an undo or redo request does not fit the history.
	EventReject
	// EventTruncate is emitted when a push discards redo-able mementos.
	EventTruncate
	// EventEvict is emitted when a push evicts the oldest mementos.
	EventEvict
	// EventErase is emitted when mementos before the cursor are erased.
	EventErase
	// EventClear is emitted when the history is cleared.
	EventClear
)

var eventNames = [...]string{
	EventInvoke:   "invoke",
	EventUndo:     "undo",
	EventRedo:     "redo",
	EventReject:   "reject",
	EventTruncate: "truncate",
	EventEvict:    "evict",
	EventErase:    "erase",
	EventClear:    "clear",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}

	return eventNames[k]
}

// Event describes a change of the history.
// Position and Size describe the history after the change.
type Event struct {
	Kind      EventKind
	Tag       Tag
	Position  int
	Size      int
	Count     int
	Persisted bool
	Err       error
}

// Observer receives history events. Observers are called synchronously and
// must not call back into the System.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// Observers fans events out to several observers in order.
type Observers []Observer

// Observe forwards e to every observer.
func (obs Observers) Observe(e Event) {
	for _, o := range obs {
		o.Observe(e)
	}
}

// LogObserver writes every event to a structured logger at debug level,
// and failed invocations at warn level.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a LogObserver. A nil logger discards everything.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &LogObserver{logger: logger}
}

// Observe logs e.
func (o *LogObserver) Observe(e Event) {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
		slog.Int("position", e.Position),
		slog.Int("size", e.Size),
	}

	if e.Tag != "" {
		attrs = append(attrs, slog.String("tag", string(e.Tag)))
	}

	if e.Count > 0 {
		attrs = append(attrs, slog.Int("count", e.Count))
	}

	level := slog.LevelDebug

	if e.Kind == EventInvoke {
		attrs = append(attrs, slog.Bool("persisted", e.Persisted))
	}

	if e.Err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}

	o.logger.LogAttrs(context.Background(), level, "undo history", attrs...)
}

var (
	_ Observer = ObserverFunc(nil)
	_ Observer = Observers(nil)
	_ Observer = (*LogObserver)(nil)
)
