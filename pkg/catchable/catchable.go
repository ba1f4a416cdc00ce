package catchable

import "iter"

// Sequence is a lazily produced series of values in which every element may fail on its own.
type Sequence[T any] interface {
	// All returns an iterator over the elements. A non-nil error marks a failing element;
	// iteration may continue past it.
	All() iter.Seq2[T, error]
}

// Catchable is a Sequence whose per-element errors are meant to be intercepted.
//
// The interface can only be satisfied by decorators from this package, so "already catchable"
// is a property of the type rather than of a flag carried by the value.
type Catchable[T any] interface {
	Sequence[T]

	// Catch returns a sequence that consults handlers, in order, for every failing element.
	// The receiver is left unchanged.
	Catch(handlers ...Handler) Catchable[T]

	catchable()
}

// AsCatchable moves source into a catchable context.
//
// A source that is already catchable is returned as is. Otherwise it is wrapped in a decorator
// that forwards iteration to it. No element of source is produced until the result is iterated.
func AsCatchable[T any](source Sequence[T]) Catchable[T] {
	if c, ok := source.(Catchable[T]); ok {
		return c
	}
	return &wrapper[T]{source: source}
}

// wrapper forwards iteration to a plain sequence.
type wrapper[T any] struct {
	source Sequence[T]
}

func (w *wrapper[T]) All() iter.Seq2[T, error] { return all(w.source) }

func (w *wrapper[T]) Catch(handlers ...Handler) Catchable[T] { return catchWith[T](w, handlers) }

func (*wrapper[T]) catchable() {}

// all returns the iterator of s, treating a nil sequence or a nil iterator as empty.
func all[T any](s Sequence[T]) iter.Seq2[T, error] {
	if s == nil {
		return empty[T]
	}
	if seq := s.All(); seq != nil {
		return seq
	}
	return empty[T]
}

func empty[T any](func(T, error) bool) {}
