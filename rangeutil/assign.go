package rangeutil

import "iter"

// Fill overwrites every element of r with value.
func Fill[T any, I Mutable[T, I]](r Range[T, I], value T) {
	for it := r.Left; !it.Equal(r.Right); it = it.Next() {
		it.Set(value)
	}
}

// Append copies the elements of r to the end of dst.
func Append[S ~[]T, T any, I Iterator[T, I]](dst S, r Range[T, I]) S {
	if data, ok := span(r); ok {
		return append(dst, data...)
	}
	for it := r.Left; !it.Equal(r.Right); it = it.Next() {
		dst = append(dst, it.Deref())
	}
	return dst
}

// AppendList copies the elements of r to the back of l.
func AppendList[T any, I Iterator[T, I]](l *List[T], r Range[T, I]) *List[T] {
	for it := r.Left; !it.Equal(r.Right); it = it.Next() {
		l.PushBack(it.Deref())
	}
	return l
}

// Assign replaces the contents of dst with the elements of r, reusing its capacity.
func Assign[S ~[]T, T any, I Iterator[T, I]](dst S, r Range[T, I]) S {
	return Append(dst[:0], r)
}

// AssignBy is Assign of the projected elements of r.
func AssignBy[S ~[]U, T, U any, I Iterator[T, I]](dst S, r Range[T, I], proj func(T) U) S {
	return Assign(dst, TransformView(r, proj))
}

// MakeCopy returns a new S holding the elements of r.
func MakeCopy[S ~[]T, T any, I Iterator[T, I]](r Range[T, I]) S {
	return Append(make(S, 0, capHint(r)), r)
}

// AssignProxy defers copying a range until the destination type is chosen.
// It aliases the source storage and must not outlive it.
type AssignProxy[T any, I Iterator[T, I]] struct {
	ref Range[T, I]
}

// AssignFrom captures r for a later IntoSlice or Into.
func AssignFrom[T any, I Iterator[T, I]](r Range[T, I]) AssignProxy[T, I] {
	return AssignProxy[T, I]{r}
}

// IntoSlice materializes p as an S, reading the source at this point.
func IntoSlice[S ~[]T, T any, I Iterator[T, I]](p AssignProxy[T, I]) S {
	return MakeCopy[S](p.ref)
}

// Into materializes p through build, for containers that are not slices.
func Into[C, T any, I Iterator[T, I]](p AssignProxy[T, I], build func(iter.Seq[T]) C) C {
	return build(p.ref.All())
}

// capHint is the element count when it is cheap to know.
func capHint[T any, I Iterator[T, I]](r Range[T, I]) int {
	if CategoryOf(r.Left) == Random {
		return r.Len()
	}
	return 0
}
