package rangeutil

// Reverse walks a bidirectional sequence back to front. Its position is one past
// the element it dereferences, so a reversed range is built from the same pair
// of base iterators swapped. Reverse is read-only and bidirectional whatever the
// base; ReverseMutable and ReverseRandom keep write and random access.
type Reverse[T any, I Bidirectional[T, I]] struct {
	base I
}

func (r Reverse[T, I]) Deref() T {
	return r.base.Prev().Deref()
}

func (r Reverse[T, I]) Next() Reverse[T, I] {
	return Reverse[T, I]{r.base.Prev()}
}

func (r Reverse[T, I]) Prev() Reverse[T, I] {
	return Reverse[T, I]{r.base.Next()}
}

func (r Reverse[T, I]) Equal(other Reverse[T, I]) bool {
	return r.base.Equal(other.base)
}

// Base returns the underlying iterator.
func (r Reverse[T, I]) Base() I {
	return r.base
}

// ReverseView presents a finite bidirectional range in reverse order.
func ReverseView[T any, I Bidirectional[T, I]](r Range[T, I]) Range[T, Reverse[T, I]] {
	return Range[T, Reverse[T, I]]{Reverse[T, I]{r.Right}, Reverse[T, I]{r.Left}}
}

// ReverseMutable is Reverse over a writable base, and is writable itself.
type ReverseMutable[T any, I BidiMutable[T, I]] struct {
	base I
}

func (r ReverseMutable[T, I]) Deref() T {
	return r.base.Prev().Deref()
}

func (r ReverseMutable[T, I]) Set(v T) {
	r.base.Prev().Set(v)
}

func (r ReverseMutable[T, I]) Next() ReverseMutable[T, I] {
	return ReverseMutable[T, I]{r.base.Prev()}
}

func (r ReverseMutable[T, I]) Prev() ReverseMutable[T, I] {
	return ReverseMutable[T, I]{r.base.Next()}
}

func (r ReverseMutable[T, I]) Equal(other ReverseMutable[T, I]) bool {
	return r.base.Equal(other.base)
}

func (r ReverseMutable[T, I]) Base() I {
	return r.base
}

// ReverseMutableView is ReverseView keeping write access to the elements.
func ReverseMutableView[T any, I BidiMutable[T, I]](r Range[T, I]) Range[T, ReverseMutable[T, I]] {
	return Range[T, ReverseMutable[T, I]]{ReverseMutable[T, I]{r.Right}, ReverseMutable[T, I]{r.Left}}
}

// ReverseRandom is Reverse over a random access writable base. Jumps stay
// constant time, so a reversed slice can be sorted in place.
type ReverseRandom[T any, I RandomMutable[T, I]] struct {
	base I
}

func (r ReverseRandom[T, I]) Deref() T {
	return r.base.Add(-1).Deref()
}

func (r ReverseRandom[T, I]) Set(v T) {
	r.base.Add(-1).Set(v)
}

func (r ReverseRandom[T, I]) Next() ReverseRandom[T, I] {
	return ReverseRandom[T, I]{r.base.Prev()}
}

func (r ReverseRandom[T, I]) Prev() ReverseRandom[T, I] {
	return ReverseRandom[T, I]{r.base.Next()}
}

func (r ReverseRandom[T, I]) Add(n int) ReverseRandom[T, I] {
	return ReverseRandom[T, I]{r.base.Add(-n)}
}

// Sub is negated on the base: walking forward here walks the base backwards.
func (r ReverseRandom[T, I]) Sub(other ReverseRandom[T, I]) int {
	return other.base.Sub(r.base)
}

func (r ReverseRandom[T, I]) Equal(other ReverseRandom[T, I]) bool {
	return r.base.Equal(other.base)
}

func (r ReverseRandom[T, I]) Base() I {
	return r.base
}

// ReverseRandomView is ReverseView keeping write access and random access.
func ReverseRandomView[T any, I RandomMutable[T, I]](r Range[T, I]) Range[T, ReverseRandom[T, I]] {
	return Range[T, ReverseRandom[T, I]]{ReverseRandom[T, I]{r.Right}, ReverseRandom[T, I]{r.Left}}
}
