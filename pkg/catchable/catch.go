package catchable

import (
	"errors"
	"iter"
	"slices"
)

// Handler decides what happens to a failing element.
type Handler func(err error) Action

// Always returns a handler that answers action for every error.
func Always(action Action) Handler {
	return func(error) Action { return action }
}

// On returns a handler that answers action for errors matching target with errors.Is.
func On(target error, action Action) Handler {
	return func(err error) Action {
		if errors.Is(err, target) {
			return action
		}
		return Propagate
	}
}

// CatchAs attaches a handler that only sees errors of type E, as found by errors.As.
// Errors of any other type propagate.
func CatchAs[E error, T any](c Catchable[T], fn func(E) Action) Catchable[T] {
	if fn == nil {
		return c
	}
	return c.Catch(func(err error) Action {
		var target E
		if errors.As(err, &target) {
			return fn(target)
		}
		return Propagate
	})
}

// decide returns the first action other than Propagate.
func decide(handlers []Handler, err error) Action {
	for _, h := range handlers {
		if a := h(err); a != Propagate {
			return a
		}
	}
	return Propagate
}

// caught applies handlers to the failing elements of its source.
type caught[T any] struct {
	source   Catchable[T]
	handlers []Handler
}

func (c *caught[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range all[T](c.source) {
			if err != nil {
				switch decide(c.handlers, err) {
				case Skip:
					continue
				case Stop:
					return
				}
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

// Catch merges handlers into the existing list instead of stacking another decorator.
func (c *caught[T]) Catch(handlers ...Handler) Catchable[T] {
	hs := withoutNil(handlers)
	if len(hs) == 0 {
		return c
	}
	return &caught[T]{
		source:   c.source,
		handlers: append(slices.Clip(c.handlers), hs...),
	}
}

func (*caught[T]) catchable() {}

func catchWith[T any](source Catchable[T], handlers []Handler) Catchable[T] {
	hs := withoutNil(handlers)
	if len(hs) == 0 {
		return source
	}
	return &caught[T]{source: source, handlers: hs}
}

func withoutNil(handlers []Handler) []Handler {
	var out []Handler
	for _, h := range handlers {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}
