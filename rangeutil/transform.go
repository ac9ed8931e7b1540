package rangeutil

// Transform applies proj to the base element on every Deref. Nothing is cached,
// so proj must be pure: algorithms may dereference one position more than once.
// Transform is forward only; TransformRandom keeps random access.
type Transform[T, U any, I Iterator[T, I]] struct {
	base I
	proj func(T) U
}

func (t Transform[T, U, I]) Deref() U {
	return t.proj(t.base.Deref())
}

func (t Transform[T, U, I]) Next() Transform[T, U, I] {
	return Transform[T, U, I]{t.base.Next(), t.proj}
}

// Equal compares base positions only.
func (t Transform[T, U, I]) Equal(other Transform[T, U, I]) bool {
	return t.base.Equal(other.base)
}

// Base returns the underlying iterator.
func (t Transform[T, U, I]) Base() I {
	return t.base
}

// TransformView lazily projects every element of r through proj.
func TransformView[T, U any, I Iterator[T, I]](r Range[T, I], proj func(T) U) Range[U, Transform[T, U, I]] {
	return Range[U, Transform[T, U, I]]{
		Transform[T, U, I]{r.Left, proj},
		Transform[T, U, I]{r.Right, proj},
	}
}

// TransformRandom is Transform over a random access base, keeping its jumps.
type TransformRandom[T, U any, I RandomAccess[T, I]] struct {
	base I
	proj func(T) U
}

func (t TransformRandom[T, U, I]) Deref() U {
	return t.proj(t.base.Deref())
}

func (t TransformRandom[T, U, I]) Next() TransformRandom[T, U, I] {
	return TransformRandom[T, U, I]{t.base.Next(), t.proj}
}

func (t TransformRandom[T, U, I]) Prev() TransformRandom[T, U, I] {
	return TransformRandom[T, U, I]{t.base.Prev(), t.proj}
}

func (t TransformRandom[T, U, I]) Add(n int) TransformRandom[T, U, I] {
	return TransformRandom[T, U, I]{t.base.Add(n), t.proj}
}

func (t TransformRandom[T, U, I]) Sub(other TransformRandom[T, U, I]) int {
	return t.base.Sub(other.base)
}

func (t TransformRandom[T, U, I]) Equal(other TransformRandom[T, U, I]) bool {
	return t.base.Equal(other.base)
}

func (t TransformRandom[T, U, I]) Base() I {
	return t.base
}

// TransformRandomView is TransformView for random access ranges; the result
// can be reversed and measured in constant time.
func TransformRandomView[T, U any, I RandomAccess[T, I]](r Range[T, I], proj func(T) U) Range[U, TransformRandom[T, U, I]] {
	return Range[U, TransformRandom[T, U, I]]{
		TransformRandom[T, U, I]{r.Left, proj},
		TransformRandom[T, U, I]{r.Right, proj},
	}
}
