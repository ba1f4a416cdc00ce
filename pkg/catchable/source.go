package catchable

import "iter"

// Func adapts an iterator function to a Sequence.
type Func[T any] func(yield func(T, error) bool)

// All returns f itself.
func (f Func[T]) All() iter.Seq2[T, error] {
	if f == nil {
		return nil
	}
	return iter.Seq2[T, error](f)
}

// FromSeq turns an infallible iterator into a Sequence whose elements never fail.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	if seq == nil {
		return Func[T](empty[T])
	}
	return Func[T](func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	})
}

// FromSeq2 turns an iterator of value/error pairs into a Sequence.
func FromSeq2[T any](seq iter.Seq2[T, error]) Sequence[T] {
	if seq == nil {
		return Func[T](empty[T])
	}
	return Func[T](seq)
}

// FromSlice returns a Sequence over items. The slice is not copied.
func FromSlice[T any](items ...T) Sequence[T] {
	return Func[T](func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	})
}

// Fail returns a Sequence with one failing element per error.
func Fail[T any](errs ...error) Sequence[T] {
	return Func[T](func(yield func(T, error) bool) {
		for _, err := range errs {
			var zero T
			if !yield(zero, err) {
				return
			}
		}
	})
}
