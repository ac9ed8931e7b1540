package rangeutil

import "iter"

// Range is a non-owning [Left, Right) view over storage owned elsewhere.
// It stays valid only as long as that storage does.
type Range[T any, I Iterator[T, I]] struct {
	Left, Right I
}

// Begin returns the first position.
func (r Range[T, I]) Begin() I {
	return r.Left
}

// End returns the position one past the last element.
func (r Range[T, I]) End() I {
	return r.Right
}

// Empty reports whether the range has no elements.
func (r Range[T, I]) Empty() bool {
	return r.Left.Equal(r.Right)
}

// Len counts the elements, in constant time for random access iterators.
func (r Range[T, I]) Len() int {
	return Distance(r.Left, r.Right)
}

// All returns a single pass sequence of the elements in order.
func (r Range[T, I]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := r.Left; !it.Equal(r.Right); it = it.Next() {
			if !yield(it.Deref()) {
				return
			}
		}
	}
}

// span exposes the backing block of a contiguous range.
func span[T any, I Iterator[T, I]](r Range[T, I]) ([]T, bool) {
	if c, ok := any(r.Left).(interface{ Span(I) []T }); ok {
		return c.Span(r.Right), true
	}
	return nil, false
}
