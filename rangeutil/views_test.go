package rangeutil

import "slices"
import "testing"

// node and fwd form a singly linked, forward-only sequence.
type node struct {
	v    int
	next *node
}

type fwd struct {
	n *node
}

func (f fwd) Deref() int           { return f.n.v }
func (f fwd) Next() fwd            { return fwd{f.n.next} }
func (f fwd) Equal(other fwd) bool { return f.n == other.n }

func forwardOf(values ...int) Range[int, fwd] {
	var head *node
	for i := len(values) - 1; i >= 0; i-- {
		head = &node{values[i], head}
	}
	return Range[int, fwd]{fwd{head}, fwd{}}
}

func TestSingletonView(t *testing.T) {
	x := 3
	r := SingletonView(&x)
	if r.Len() != 1 {
		t.Fatalf("singleton length %d", r.Len())
	}
	Fill(r, 7)
	if x != 7 {
		t.Errorf("write through singleton view lost, x == %d", x)
	}
	c := ConstSingletonView(&x)
	if got := MakeCopy[[]int](c); !slices.Equal(got, []int{7}) {
		t.Errorf("const singleton = %v", got)
	}
}

func TestSubrangeView(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e", "f"}
	want := []string{"c", "d", "e"}

	if got := MakeCopy[[]string](SubrangeView(Slice(s), 2, 5)); !slices.Equal(got, want) {
		t.Errorf("slice subrange = %v, want %v", got, want)
	}
	l := NewList(s...)
	if got := MakeCopy[[]string](SubrangeView(l.View(), 2, 5)); !slices.Equal(got, want) {
		t.Errorf("list subrange = %v, want %v", got, want)
	}
	if got := MakeCopy[[]string](SubrangeViewPair(Slice(s), [2]int{2, 5})); !slices.Equal(got, want) {
		t.Errorf("pair subrange = %v, want %v", got, want)
	}
	f := forwardOf(0, 1, 2, 3, 4, 5)
	if got := MakeCopy[[]int](SubrangeView(f, 2, 5)); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("forward subrange = %v", got)
	}
	if !SubrangeView(Slice(s), 3, 3).Empty() {
		t.Error("equal offsets must give an empty range")
	}
}

func TestAdvanceBackwards(t *testing.T) {
	l := NewList(1, 2, 3)
	if v := Advance(l.End(), -1).Deref(); v != 3 {
		t.Errorf("one before end of list = %d", v)
	}
	s := Slice([]int{1, 2, 3})
	if v := Advance(s.End(), -3).Deref(); v != 1 {
		t.Errorf("three before end of slice = %d", v)
	}
	if d := Distance(l.Begin(), l.End()); d != 3 {
		t.Errorf("list distance = %d", d)
	}
}

func TestReverseView(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	rev := MakeCopy[[]int](ReverseView(Slice(s)))
	if !slices.Equal(rev, []int{5, 4, 3, 2, 1}) {
		t.Errorf("reverse = %v", rev)
	}
	if got := MakeCopy[[]int](ReverseView(ReverseView(Slice(s)))); !slices.Equal(got, s) {
		t.Errorf("double reverse = %v", got)
	}
	l := NewList(s...)
	if got := MakeCopy[[]int](ReverseView(l.View())); !slices.Equal(got, rev) {
		t.Errorf("list reverse = %v", got)
	}
	if got := MakeCopy[[]int](ReverseView(ReverseView(l.View()))); !slices.Equal(got, s) {
		t.Errorf("list double reverse = %v", got)
	}
	if !ReverseView(Slice([]int(nil))).Empty() {
		t.Error("reverse of empty must be empty")
	}
}

func FuzzReverseView(f *testing.F) {
	f.Add([]byte{1, 2, 3})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, buffer []byte) {
		l := NewList(buffer...)
		twice := MakeCopy[[]byte](ReverseView(ReverseView(l.View())))
		if !slices.Equal(twice, buffer) {
			t.Fatalf("%v != %v", twice, buffer)
		}
		once := MakeCopy[[]byte](ReverseView(Slice(buffer)))
		for i := range once {
			if once[i] != buffer[len(buffer)-1-i] {
				t.Fatalf("position %d: %v", i, once)
			}
		}
	})
}

func TestRangePointerView(t *testing.T) {
	v := Vector[float64]{1.5, 2.5}
	r := RangePointerView[float64](v)
	*r.Begin().Ref() = 4
	if v[0] != 4 {
		t.Errorf("pointer view does not alias storage: %v", v)
	}
	if r.Len() != 2 {
		t.Errorf("pointer view length %d", r.Len())
	}
	same := RangeView[float64, Pointer[float64]](v)
	if !same.Begin().Equal(r.Begin()) || !same.End().Equal(r.End()) {
		t.Error("range view and pointer view of a vector disagree")
	}
}

func TestCategoryOf(t *testing.T) {
	s := Slice([]int{1})
	l := NewList(1)
	tests := []struct {
		name string
		got  Category
		want Category
	}{
		{"pointer", CategoryOf(s.Left), Random},
		{"list", CategoryOf(l.Begin()), Bidi},
		{"forward", CategoryOf(forwardOf(1).Left), Forward},
		{"const", CategoryOf(ConstView(s).Left), Forward},
		{"reverse", CategoryOf(ReverseView(s).Left), Bidi},
		{"transform", CategoryOf(TransformView(s, func(v int) int { return v }).Left), Forward},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: category %s, want %s", tc.name, tc.got, tc.want)
		}
	}
	if !IsContiguous[int](s.Left) {
		t.Error("slice must be contiguous")
	}
	if IsContiguous[int](l.Begin()) {
		t.Error("list must not be contiguous")
	}
}

func TestTransformViewLazy(t *testing.T) {
	calls := 0
	s := []int{1, 2, 3}
	view := TransformView(Slice(s), func(v int) int {
		calls++
		return v * 10
	})
	if calls != 0 {
		t.Fatalf("projection ran %d times before dereference", calls)
	}
	s[1] = 5
	got := MakeCopy[[]int](view)
	if !slices.Equal(got, []int{10, 50, 30}) {
		t.Errorf("transform = %v", got)
	}
	if calls != 3 {
		t.Errorf("projection ran %d times, want 3", calls)
	}
	view.Begin().Deref()
	view.Begin().Deref()
	if calls != 5 {
		t.Errorf("dereference must not be cached, %d calls", calls)
	}
	if view.Len() != 3 {
		t.Errorf("transform length %d", view.Len())
	}
}

func TestReverseWritable(t *testing.T) {
	s := []int{3, 1, 4, 1, 5}
	rev := ReverseRandomView(Slice(s))
	if CategoryOf(rev.Left) != Random {
		t.Errorf("reversed slice category %s", CategoryOf(rev.Left))
	}
	if rev.Len() != 5 || Advance(rev.Begin(), 2).Deref() != 4 {
		t.Errorf("reversed slice length %d", rev.Len())
	}
	Sort(rev)
	if !slices.Equal(s, []int{5, 4, 3, 1, 1}) {
		t.Errorf("sorting a reversed slice = %v", s)
	}
	Fill(SubrangeView(rev, 0, 2), 0)
	if !slices.Equal(s, []int{5, 4, 3, 0, 0}) {
		t.Errorf("filling the head of a reversed slice = %v", s)
	}
	if got := MakeCopy[[]int](ReverseView(ReverseRandomView(Slice(s)))); !slices.Equal(got, s) {
		t.Errorf("double reverse = %v", got)
	}

	l := NewList(1, 2, 3)
	back := ReverseMutableView(l.View())
	if CategoryOf(back.Left) != Bidi {
		t.Errorf("reversed list category %s", CategoryOf(back.Left))
	}
	Fill(SubrangeView(back, 0, 1), 9)
	if got := MakeCopy[[]int](l.View()); !slices.Equal(got, []int{1, 2, 9}) {
		t.Errorf("write through reversed list = %v", got)
	}
	if got := MakeCopy[[]int](ReverseView(back)); !slices.Equal(got, []int{1, 2, 9}) {
		t.Errorf("reverse of reversed list = %v", got)
	}
}

func TestRandomViewsKeepCategory(t *testing.T) {
	s := []int{1, 2, 3, 4}
	c := ConstRandomView(Slice(s))
	if CategoryOf(c.Left) != Random || c.Len() != 4 {
		t.Errorf("const random category %s", CategoryOf(c.Left))
	}
	if got := MakeCopy[[]int](ReverseView(c)); !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("reversed const view = %v", got)
	}

	calls := 0
	sq := TransformRandomView(Slice(s), func(v int) int {
		calls++
		return v * v
	})
	if CategoryOf(sq.Left) != Random || sq.Len() != 4 || calls != 0 {
		t.Errorf("transform random category %s after %d calls", CategoryOf(sq.Left), calls)
	}
	if got := MakeCopy[[]int](ReverseView(sq)); !slices.Equal(got, []int{16, 9, 4, 1}) {
		t.Errorf("reversed transform = %v", got)
	}
	if v := Advance(sq.Begin(), 3).Deref(); v != 16 {
		t.Errorf("jump into transform = %d", v)
	}
	if got := SumBy(SubrangeView(sq, 1, 3), func(v int) int { return v }); got != 13 {
		t.Errorf("sum of transformed subrange = %d", got)
	}
}
