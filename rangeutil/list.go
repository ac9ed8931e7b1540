package rangeutil

import "container/list"

// List is a doubly linked sequence. Its iterators are bidirectional and writable
// but neither random access nor contiguous.
type List[T any] struct {
	l list.List
}

// NewList returns a list holding values in order.
func NewList[T any](values ...T) *List[T] {
	l := new(List[T])
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) PushBack(v T) {
	l.l.PushBack(v)
}

// Len reports the number of elements.
func (l *List[T]) Len() int {
	return l.l.Len()
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.l.Init()
}

func (l *List[T]) Begin() ListIter[T] {
	return ListIter[T]{&l.l, l.l.Front()}
}

func (l *List[T]) End() ListIter[T] {
	return ListIter[T]{&l.l, nil}
}

// View returns the canonical view of l.
func (l *List[T]) View() Range[T, ListIter[T]] {
	return RangeView[T, ListIter[T]](l)
}

// ListIter points at a List element, or one past the back when e is nil.
type ListIter[T any] struct {
	l *list.List
	e *list.Element
}

func (it ListIter[T]) Deref() T {
	return it.e.Value.(T)
}

func (it ListIter[T]) Set(v T) {
	it.e.Value = v
}

func (it ListIter[T]) Next() ListIter[T] {
	return ListIter[T]{it.l, it.e.Next()}
}

func (it ListIter[T]) Prev() ListIter[T] {
	if it.e == nil {
		return ListIter[T]{it.l, it.l.Back()}
	}
	return ListIter[T]{it.l, it.e.Prev()}
}

func (it ListIter[T]) Equal(other ListIter[T]) bool {
	return it.e == other.e
}
