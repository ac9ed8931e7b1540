package rangeutil

import "cmp"
import "iter"

import "golang.org/x/exp/constraints"

// Number is any type summable with +.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// AllOf reports whether pred holds for every element. It is true for an empty range.
func AllOf[T any, I Iterator[T, I]](r Range[T, I], pred func(T) bool) bool {
	for it := r.Left; !it.Equal(r.Right); it = it.Next() {
		if !pred(it.Deref()) {
			return false
		}
	}
	return true
}

// AnyOf reports whether pred holds for some element. It is false for an empty range.
func AnyOf[T any, I Iterator[T, I]](r Range[T, I], pred func(T) bool) bool {
	for it := r.Left; !it.Equal(r.Right); it = it.Next() {
		if pred(it.Deref()) {
			return true
		}
	}
	return false
}

// SumBy accumulates proj(element) left to right, starting from base[0] or zero.
// The additions are never reordered.
func SumBy[T any, V Number, I Iterator[T, I]](r Range[T, I], proj func(T) V, base ...V) (sum V) {
	if len(base) > 0 {
		sum = base[0]
	}
	canon := TransformView(r, proj)
	for it := canon.Left; !it.Equal(canon.Right); it = it.Next() {
		sum += it.Deref()
	}
	return sum
}

// MaxElementBy returns the first position holding the largest proj value,
// or r.End() when r is empty.
func MaxElementBy[T any, K cmp.Ordered, I Iterator[T, I]](r Range[T, I], proj func(T) K) I {
	largest := r.Left
	if largest.Equal(r.Right) {
		return largest
	}
	key := proj(largest.Deref())
	for it := largest.Next(); !it.Equal(r.Right); it = it.Next() {
		if k := proj(it.Deref()); key < k {
			largest, key = it, k
		}
	}
	return largest
}

// MaxValue returns the largest value of seq in a single pass, the zero value when
// seq is empty. The first of several equal maxima wins.
func MaxValue[T cmp.Ordered](seq iter.Seq[T]) T {
	return MaxValueFunc(seq, func(a, b T) bool { return a < b })
}

// MaxValueFunc is MaxValue under the ordering less.
func MaxValueFunc[T any](seq iter.Seq[T], less func(a, b T) bool) (m T) {
	first := true
	for x := range seq {
		if first {
			m, first = x, false
		} else if less(m, x) {
			m = x
		}
	}
	return m
}

// MinMax holds the bounds found by MinMaxValue.
type MinMax[T any] struct {
	Lower, Upper T
}

// MinMaxValue returns the smallest and largest value of seq in a single pass,
// zero values when seq is empty.
func MinMaxValue[T cmp.Ordered](seq iter.Seq[T]) MinMax[T] {
	return MinMaxValueFunc(seq, func(a, b T) bool { return a < b })
}

// MinMaxValueFunc is MinMaxValue under the ordering less. An element that raises
// Upper is not also tested against Lower.
func MinMaxValueFunc[T any](seq iter.Seq[T], less func(a, b T) bool) (mm MinMax[T]) {
	first := true
	for x := range seq {
		switch {
		case first:
			mm.Lower, mm.Upper, first = x, x, false
		case less(mm.Upper, x):
			mm.Upper = x
		case less(x, mm.Lower):
			mm.Lower = x
		}
	}
	return mm
}

// IsSorted reports whether r is ascending under <.
func IsSorted[T cmp.Ordered, I Iterator[T, I]](r Range[T, I]) bool {
	it := r.Left
	if it.Equal(r.Right) {
		return true
	}
	prev := it.Deref()
	for it = it.Next(); !it.Equal(r.Right); it = it.Next() {
		cur := it.Deref()
		if cur < prev {
			return false
		}
		prev = cur
	}
	return true
}

// IsSortedBy reports whether proj(element) never decreases along r.
func IsSortedBy[T any, K cmp.Ordered, I Iterator[T, I]](r Range[T, I], proj func(T) K) bool {
	return IsSortedByFunc(r, proj, func(a, b K) bool { return a < b })
}

// IsSortedByFunc is IsSortedBy under the ordering less. Keys are taken two at a
// time, so each element is projected exactly once.
func IsSortedByFunc[T, K any, I Iterator[T, I]](r Range[T, I], proj func(T) K, less func(a, b K) bool) bool {
	i, e := r.Left, r.Right
	if i.Equal(e) {
		return true
	}
	if i.Next().Equal(e) {
		return true
	}

	v := proj(i.Deref())
	i = i.Next()
	for {
		if i.Equal(e) {
			return true
		}
		u := proj(i.Deref())
		i = i.Next()
		if less(u, v) {
			return false
		}

		if i.Equal(e) {
			return true
		}
		v = proj(i.Deref())
		i = i.Next()
		if less(v, u) {
			return false
		}
	}
}
