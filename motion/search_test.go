package motion

import (
	"testing"

	"github.com/iw2rmb/bidicaret/bidi"
)

func TestFindFirst(t *testing.T) {
	cases := []struct {
		name     string
		pred     func(int) bool
		from, to int
		want     int
	}{
		{name: "ascending", pred: func(i int) bool { return i >= 6 }, from: 0, to: 9, want: 6},
		{name: "descending", pred: func(i int) bool { return i <= 3 }, from: 9, to: 0, want: 3},
		{name: "always", pred: func(int) bool { return true }, from: 9, to: 5, want: 9},
		{name: "never", pred: func(int) bool { return false }, from: 2, to: 7, want: 7},
		{name: "empty range", pred: func(int) bool { return false }, from: 4, to: 4, want: 4},
	}

	for _, tc := range cases {
		if got := findFirst(tc.pred, tc.from, tc.to); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPartAt(t *testing.T) {
	order := bidi.Order{
		{From: 0, To: 3, Level: 0},
		{From: 3, To: 3, Level: 1},
		{From: 3, To: 6, Level: 1},
	}

	cases := []struct {
		index  int
		sticky Sticky
		want   int
	}{
		{index: 1, sticky: StickyBefore, want: 0},
		{index: 1, sticky: StickyAfter, want: 0},
		{index: 3, sticky: StickyBefore, want: 0},
		{index: 3, sticky: StickyAfter, want: 2},
		{index: 6, sticky: StickyBefore, want: 2},
		{index: 6, sticky: StickyAfter, want: 2},
		{index: 9, sticky: StickyAfter, want: -1},
	}

	for _, tc := range cases {
		if got := partAt(order, tc.index, tc.sticky); got != tc.want {
			t.Fatalf("partAt(%d,%v): got %d, want %d", tc.index, tc.sticky, got, tc.want)
		}
	}

	markerOnly := bidi.Order{{From: 0, To: 0, Level: 1}}
	if got := partAt(markerOnly, 0, StickyAfter); got != 0 {
		t.Fatalf("marker fallback: got %d, want 0", got)
	}
}

func TestRowCache_MeasuresEachIndexOnce(t *testing.T) {
	calls := map[int]int{}
	c := newRowCache(RowFunc(func(i int) int {
		calls[i]++
		return i / 4
	}), 10)

	for _, i := range []int{1, 1, 5, 5, 12, 9, -2, 0} {
		c.row(i)
	}
	for i, n := range calls {
		if n != 1 {
			t.Fatalf("index %d measured %d times", i, n)
		}
	}
	if got := c.row(12); got != 2 {
		t.Fatalf("clamped row: got %d, want 2", got)
	}
	if got := c.row(-2); got != 0 {
		t.Fatalf("clamped row below: got %d, want 0", got)
	}
}

func TestMoveVisually_MeasuresEachIndexOncePerCall(t *testing.T) {
	var calls map[int]int
	rows := RowFunc(func(i int) int {
		calls[i]++
		return i / 5
	})
	l := Line{
		Text:  append([]rune("abc"), runes(12, '\u05d0')...),
		Order: bidi.Order{{From: 0, To: 3, Level: 0}, {From: 3, To: 15, Level: 1}},
		Rows:  rows,
	}

	cur := after(0)
	for step := 0; step < 20; step++ {
		calls = map[int]int{}
		cur = MoveVisually(l, cur, Right, false)
		for i, n := range calls {
			if n > 1 {
				t.Fatalf("from %v: index %d measured %d times", cur, i, n)
			}
		}
		if !cur.Valid() {
			return
		}
	}
}
