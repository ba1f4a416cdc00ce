package catchable

import (
	"iter"
	"runtime/debug"
)

// Select projects every element of source through fn.
//
// Failing elements of source are passed on without calling fn. An error returned by fn, or a panic
// inside it, fails only the element being projected; iteration continues with the next one.
func Select[T, U any](source Sequence[T], fn func(T) (U, error)) Catchable[U] {
	return &selected[T, U]{source: source, fn: fn}
}

// Where keeps the elements of source for which pred reports true.
//
// When pred fails for an element, that element is yielded together with the error so a handler
// can decide whether to keep going.
func Where[T any](source Sequence[T], pred func(T) (bool, error)) Catchable[T] {
	return &filtered[T]{source: source, pred: pred}
}

type selected[T, U any] struct {
	source Sequence[T]
	fn     func(T) (U, error)
}

func (s *selected[T, U]) All() iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for v, err := range all(s.source) {
			var out U
			if err == nil {
				out, err = protect(s.fn, v)
			}
			if !yield(out, err) {
				return
			}
		}
	}
}

func (s *selected[T, U]) Catch(handlers ...Handler) Catchable[U] {
	return catchWith[U](s, handlers)
}

func (*selected[T, U]) catchable() {}

type filtered[T any] struct {
	source Sequence[T]
	pred   func(T) (bool, error)
}

func (f *filtered[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range all(f.source) {
			if err == nil {
				var keep bool
				keep, err = protect(f.pred, v)
				if err == nil && !keep {
					continue
				}
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

func (f *filtered[T]) Catch(handlers ...Handler) Catchable[T] {
	return catchWith[T](f, handlers)
}

func (*filtered[T]) catchable() {}

// protect calls fn, converting a panic into a *PanicError.
func protect[T, U any](fn func(T) (U, error), v T) (out U, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero U
			out, err = zero, &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn(v)
}
