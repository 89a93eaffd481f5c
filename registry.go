package undo

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// NewRegistry creates an empty command registry.
func NewRegistry[S any]() *Registry[S] {
	return &Registry[S]{builders: g.NewMapSafe[Tag, Builder[S]]()}
}

// Register binds a builder to tag, replacing any previous binding.
func (r *Registry[S]) Register(tag Tag, b Builder[S]) *Registry[S] {
	if b != nil {
		r.builders.Set(tag, b)
	}

	return r
}

// Create builds a new command for tag from args.
// It returns None if the tag is unknown or the builder produced no command.
func (r *Registry[S]) Create(tag Tag, args ...any) g.Option[Command[S]] {
	b := r.builders.Get(tag)
	if b.IsNone() {
		return g.None[Command[S]]()
	}

	cmd := b.Some()(args...)
	if cmd == nil {
		return g.None[Command[S]]()
	}

	return g.Some(cmd)
}

// Contains reports whether tag has a builder.
func (r *Registry[S]) Contains(tag Tag) bool { return r.builders.Contains(tag) }

// Tags returns the registered tags in sorted order.
func (r *Registry[S]) Tags() g.Slice[Tag] {
	tags := g.NewSlice[Tag]()
	for tag := range r.builders.Iter() {
		tags.Push(tag)
	}

	tags.SortBy(cmp.Cmp)

	return tags
}
