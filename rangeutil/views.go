package rangeutil

// RangeView returns the canonical begin/end view of seq.
func RangeView[T any, I Iterator[T, I]](seq Sequence[T, I]) Range[T, I] {
	return Range[T, I]{seq.Begin(), seq.End()}
}

// SubrangeView returns the elements [bi, ei) of r. Offsets past the end of r, and
// negative offsets on forward-only iterators, are not checked.
func SubrangeView[T any, I Iterator[T, I]](r Range[T, I], bi, ei int) Range[T, I] {
	b := Advance(r.Left, bi)
	e := Advance(b, ei-bi)
	return Range[T, I]{b, e}
}

// SubrangeViewPair is SubrangeView with both offsets in one pair.
func SubrangeViewPair[T any, I Iterator[T, I]](r Range[T, I], index [2]int) Range[T, I] {
	return SubrangeView(r, index[0], index[1])
}
