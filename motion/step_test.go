package motion

import "testing"

func TestCharStepper(t *testing.T) {
	s := CharStepper{Text: []rune("ae\u0301\u0302b")}

	cases := []struct {
		index  int
		dir    Dir
		byUnit bool
		want   int
		ok     bool
	}{
		{index: 0, dir: Right, want: 1, ok: true},
		{index: 1, dir: Right, want: 2, ok: true},
		{index: 1, dir: Right, byUnit: true, want: 4, ok: true},
		{index: 2, dir: Right, byUnit: true, want: 4, ok: true},
		{index: 4, dir: Left, byUnit: true, want: 1, ok: true},
		{index: 4, dir: Left, want: 3, ok: true},
		{index: 5, dir: Right, want: 5, ok: false},
		{index: 0, dir: Left, byUnit: true, want: 0, ok: false},
	}

	for _, tc := range cases {
		got, ok := s.Step(tc.index, tc.dir, tc.byUnit)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Step(%d,%v,%v): got (%d,%v), want (%d,%v)", tc.index, tc.dir, tc.byUnit, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGraphemeStepper(t *testing.T) {
	s := NewGraphemeStepper([]rune("ae\u0301b"))

	cases := []struct {
		index  int
		dir    Dir
		byUnit bool
		want   int
		ok     bool
	}{
		{index: 1, dir: Right, byUnit: true, want: 3, ok: true},
		{index: 2, dir: Right, byUnit: true, want: 3, ok: true},
		{index: 3, dir: Left, byUnit: true, want: 1, ok: true},
		{index: 1, dir: Right, want: 2, ok: true},
		{index: 4, dir: Right, byUnit: true, want: 4, ok: false},
		{index: 0, dir: Left, byUnit: true, want: 0, ok: false},
		{index: 0, dir: Left, want: 0, ok: false},
	}

	for _, tc := range cases {
		got, ok := s.Step(tc.index, tc.dir, tc.byUnit)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Step(%d,%v,%v): got (%d,%v), want (%d,%v)", tc.index, tc.dir, tc.byUnit, got, ok, tc.want, tc.ok)
		}
	}
}
