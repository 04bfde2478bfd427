package bidi

import "testing"

func TestRun_Edges(t *testing.T) {
	cases := []struct {
		run         Run
		left, right int
	}{
		{run: Run{From: 2, To: 5, Level: 0}, left: 2, right: 5},
		{run: Run{From: 2, To: 5, Level: 1}, left: 5, right: 2},
		{run: Run{From: 2, To: 5, Level: 2}, left: 2, right: 5},
		{run: Run{From: 3, To: 3, Level: 1}, left: 3, right: 3},
	}

	for _, tc := range cases {
		if got := tc.run.Left(); got != tc.left {
			t.Fatalf("%+v left: got %d, want %d", tc.run, got, tc.left)
		}
		if got := tc.run.Right(); got != tc.right {
			t.Fatalf("%+v right: got %d, want %d", tc.run, got, tc.right)
		}
	}
}

func TestRun_EmptyAndContains(t *testing.T) {
	r := Run{From: 3, To: 3, Level: 1}
	if !r.Empty() {
		t.Fatalf("zero-length run should be empty")
	}
	if r.Contains(3) {
		t.Fatalf("empty run should contain nothing")
	}

	r = Run{From: 3, To: 6}
	if !r.Contains(3) || !r.Contains(5) || r.Contains(6) {
		t.Fatalf("contains should be half-open over [3,6)")
	}
}

func TestOrder_LineEdges(t *testing.T) {
	var uniform Order
	if got := uniform.Left(); got != 0 {
		t.Fatalf("uniform left: got %d, want 0", got)
	}
	if got := uniform.Right(7); got != 7 {
		t.Fatalf("uniform right: got %d, want 7", got)
	}

	mixed := Order{{From: 4, To: 8, Level: 1}, {From: 0, To: 4, Level: 0}}
	if got := mixed.Left(); got != 8 {
		t.Fatalf("mixed left: got %d, want 8", got)
	}
	if got := mixed.Right(8); got != 4 {
		t.Fatalf("mixed right: got %d, want 4", got)
	}
}
