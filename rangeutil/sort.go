package rangeutil

import "cmp"
import "slices"
import "sort"

// Sort orders r ascending in place.
func Sort[T cmp.Ordered, I RandomMutable[T, I]](r Range[T, I]) {
	SortFunc(r, func(a, b T) bool { return a < b })
}

// SortFunc orders r in place by the strict weak ordering less.
func SortFunc[T any, I RandomMutable[T, I]](r Range[T, I], less func(a, b T) bool) {
	if data, ok := span(r); ok {
		slices.SortFunc(data, compareBy(less))
		return
	}
	sort.Sort(sortable[T, I]{r.Left, r.Len(), less})
}

// SortBy orders r in place by proj(element) using < on the projected keys.
func SortBy[T any, K cmp.Ordered, I RandomMutable[T, I]](r Range[T, I], proj func(T) K) {
	SortFunc(r, byKey[T](proj))
}

// StableSortBy is SortBy keeping elements with equal keys in their original order.
func StableSortBy[T any, K cmp.Ordered, I RandomMutable[T, I]](r Range[T, I], proj func(T) K) {
	less := byKey[T](proj)
	if data, ok := span(r); ok {
		slices.SortStableFunc(data, compareBy(less))
		return
	}
	sort.Stable(sortable[T, I]{r.Left, r.Len(), less})
}

func byKey[T any, K cmp.Ordered](proj func(T) K) func(a, b T) bool {
	return func(a, b T) bool {
		return proj(a) < proj(b)
	}
}

// compareBy turns a less function into the three way form used by slices.
func compareBy[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	}
}

// sortable adapts a random access writable range to sort.Interface.
type sortable[T any, I RandomMutable[T, I]] struct {
	first I
	n     int
	less  func(a, b T) bool
}

func (s sortable[T, I]) Len() int {
	return s.n
}

func (s sortable[T, I]) Less(i, j int) bool {
	return s.less(s.first.Add(i).Deref(), s.first.Add(j).Deref())
}

func (s sortable[T, I]) Swap(i, j int) {
	a, b := s.first.Add(i), s.first.Add(j)
	va, vb := a.Deref(), b.Deref()
	a.Set(vb)
	b.Set(va)
}
