package rangeutil

// Const hides write access of the wrapped iterator. It is forward only;
// ConstRandom keeps the jumps of a random access base.
type Const[T any, I Iterator[T, I]] struct {
	base I
}

func (c Const[T, I]) Deref() T {
	return c.base.Deref()
}

func (c Const[T, I]) Next() Const[T, I] {
	return Const[T, I]{c.base.Next()}
}

func (c Const[T, I]) Equal(other Const[T, I]) bool {
	return c.base.Equal(other.base)
}

func (c Const[T, I]) Base() I {
	return c.base
}

// ConstView is a read-only view of r. Mutating algorithms reject it at compile time.
func ConstView[T any, I Iterator[T, I]](r Range[T, I]) Range[T, Const[T, I]] {
	return Range[T, Const[T, I]]{Const[T, I]{r.Left}, Const[T, I]{r.Right}}
}

// ConstRandom is Const over a random access base, keeping its jumps.
type ConstRandom[T any, I RandomAccess[T, I]] struct {
	base I
}

func (c ConstRandom[T, I]) Deref() T {
	return c.base.Deref()
}

func (c ConstRandom[T, I]) Next() ConstRandom[T, I] {
	return ConstRandom[T, I]{c.base.Next()}
}

func (c ConstRandom[T, I]) Prev() ConstRandom[T, I] {
	return ConstRandom[T, I]{c.base.Prev()}
}

func (c ConstRandom[T, I]) Add(n int) ConstRandom[T, I] {
	return ConstRandom[T, I]{c.base.Add(n)}
}

func (c ConstRandom[T, I]) Sub(other ConstRandom[T, I]) int {
	return c.base.Sub(other.base)
}

func (c ConstRandom[T, I]) Equal(other ConstRandom[T, I]) bool {
	return c.base.Equal(other.base)
}

func (c ConstRandom[T, I]) Base() I {
	return c.base
}

// ConstRandomView is a read-only view of r that can still be reversed,
// measured and cut in constant time.
func ConstRandomView[T any, I RandomAccess[T, I]](r Range[T, I]) Range[T, ConstRandom[T, I]] {
	return Range[T, ConstRandom[T, I]]{ConstRandom[T, I]{r.Left}, ConstRandom[T, I]{r.Right}}
}
