// Package rangeutil implements non-owning views over simulation entity sequences,
// together with lazy projections and the sort and reduction algorithms built on them.
//
// Capabilities of an iterator are expressed as interfaces and checked at compile time
// by the type parameter constraints of each operation. Sorting a ConstView, reversing
// a forward-only range or asking RangePointerView for a linked list does not compile.
package rangeutil

// Iterator is a forward, multi-pass iterator over values of type T. Iterators are
// values: advancing returns a new iterator and leaves the receiver untouched.
type Iterator[T, I any] interface {
	// Deref reports the element at the current position.
	Deref() T

	// Next returns the iterator advanced by one position.
	Next() I

	// Equal reports whether both iterators denote the same position.
	Equal(I) bool
}

// Bidirectional is an Iterator that can step backwards.
type Bidirectional[T, I any] interface {
	Iterator[T, I]
	Prev() I
}

// RandomAccess is a Bidirectional iterator with constant time jumps.
type RandomAccess[T, I any] interface {
	Bidirectional[T, I]

	// Add returns the iterator moved by n positions, n may be negative.
	Add(n int) I

	// Sub reports the signed distance from other to the receiver.
	Sub(other I) int
}

// Mutable is an Iterator whose element can be overwritten in place.
type Mutable[T, I any] interface {
	Iterator[T, I]
	Set(T)
}

// BidiMutable is a writable Bidirectional iterator.
type BidiMutable[T, I any] interface {
	Bidirectional[T, I]
	Set(T)
}

// RandomMutable is required by the in-place sorts.
type RandomMutable[T, I any] interface {
	RandomAccess[T, I]
	Set(T)
}

// Contiguous sequences keep their elements in one unbroken block of memory.
type Contiguous[T any] interface {
	Data() []T
}

// Sequence is anything exposing a begin and end iterator.
type Sequence[T any, I Iterator[T, I]] interface {
	Begin() I
	End() I
}

// Category is the run time descriptor of an iterator's capabilities.
type Category byte

const (
	Forward Category = iota
	Bidi
	Random
)

func (c Category) String() string {
	switch c {
	case Bidi:
		return "bidirectional"
	case Random:
		return "random-access"
	}
	return "forward"
}

// CategoryOf reports the strongest iterator category implemented by it.
func CategoryOf[I any](it I) Category {
	switch any(it).(type) {
	case interface {
		Prev() I
		Add(int) I
		Sub(I) int
	}:
		return Random
	case interface{ Prev() I }:
		return Bidi
	}
	return Forward
}

// IsContiguous reports whether a range starting at it can be presented as a slice.
func IsContiguous[T, I any](it I) bool {
	_, ok := any(it).(interface{ Span(I) []T })
	return ok
}

// Advance moves it by n positions. Negative n requires a bidirectional iterator.
// Moving past either end of the underlying sequence is not detected.
func Advance[I interface{ Next() I }](it I, n int) I {
	if ra, ok := any(it).(interface{ Add(int) I }); ok {
		return ra.Add(n)
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = any(it).(interface{ Prev() I }).Prev()
	}
	return it
}

// Distance counts the steps from a to b. b must be reachable from a.
func Distance[I interface {
	Next() I
	Equal(I) bool
}](a, b I) (n int) {
	if ra, ok := any(b).(interface{ Sub(I) int }); ok {
		return ra.Sub(a)
	}
	for ; !a.Equal(b); a = a.Next() {
		n++
	}
	return n
}
