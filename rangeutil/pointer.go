package rangeutil

import "unsafe"

// Pointer addresses one slot of a contiguous block. It is random access,
// writable and contiguous.
type Pointer[T any] struct {
	base []T
	pos  int
}

func (p Pointer[T]) Deref() T {
	return p.base[p.pos]
}

// Ref returns the address of the current element.
func (p Pointer[T]) Ref() *T {
	return &p.base[p.pos]
}

func (p Pointer[T]) Set(v T) {
	p.base[p.pos] = v
}

func (p Pointer[T]) Next() Pointer[T] {
	return Pointer[T]{p.base, p.pos + 1}
}

func (p Pointer[T]) Prev() Pointer[T] {
	return Pointer[T]{p.base, p.pos - 1}
}

func (p Pointer[T]) Add(n int) Pointer[T] {
	return Pointer[T]{p.base, p.pos + n}
}

func (p Pointer[T]) Sub(other Pointer[T]) int {
	return p.pos - other.pos
}

func (p Pointer[T]) Equal(other Pointer[T]) bool {
	return p.pos == other.pos
}

// Span returns the block [p, end) without copying.
func (p Pointer[T]) Span(end Pointer[T]) []T {
	return p.base[p.pos:end.pos:end.pos]
}

// Slice returns the canonical view of s.
func Slice[T any](s []T) Range[T, Pointer[T]] {
	return Range[T, Pointer[T]]{Pointer[T]{s, 0}, Pointer[T]{s, len(s)}}
}

// SingletonView presents *item as a range of length one aliasing it.
func SingletonView[T any](item *T) Range[T, Pointer[T]] {
	return Slice(unsafe.Slice(item, 1))
}

// ConstSingletonView is SingletonView without write access.
func ConstSingletonView[T any](item *T) Range[T, Const[T, Pointer[T]]] {
	return ConstView(SingletonView(item))
}

// RangePointerView views the storage of a contiguous sequence through Pointer iterators.
func RangePointerView[T any](seq Contiguous[T]) Range[T, Pointer[T]] {
	return Slice(seq.Data())
}

// Vector is a slice usable wherever a contiguous Sequence is expected.
type Vector[T any] []T

func (v Vector[T]) Data() []T {
	return v
}

func (v Vector[T]) Begin() Pointer[T] {
	return Pointer[T]{v, 0}
}

func (v Vector[T]) End() Pointer[T] {
	return Pointer[T]{v, len(v)}
}

// View returns the canonical view of v.
func (v Vector[T]) View() Range[T, Pointer[T]] {
	return Slice([]T(v))
}
