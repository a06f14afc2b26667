package session

import (
	"testing"

	"conway/internal/core"
)

func TestPointerToCoord(t *testing.T) {
	size := core.Size{W: 50, H: 50}
	cases := []struct {
		px, py float64
		origin Point
		want   core.Coord
		ok     bool
	}{
		{px: 0, py: 0, want: core.Coord{X: 0, Y: 0}, ok: true},
		{px: 9.99, py: 10, want: core.Coord{X: 0, Y: 1}, ok: true},
		{px: 499, py: 499, want: core.Coord{X: 49, Y: 49}, ok: true},
		{px: 500, py: 10},
		{px: 10, py: 500},
		{px: -0.1, py: 10},
		{px: 110, py: 60, origin: Point{X: 100, Y: 50}, want: core.Coord{X: 1, Y: 1}, ok: true},
		{px: 99, py: 60, origin: Point{X: 100, Y: 50}},
	}
	for _, tc := range cases {
		got, ok := PointerToCoord(tc.px, tc.py, tc.origin, 10, size)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("PointerToCoord(%v,%v,%+v)=%+v,%v, expected %+v,%v",
				tc.px, tc.py, tc.origin, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := PointerToCoord(5, 5, Point{}, 0, size); ok {
		t.Fatal("zero resolution accepted")
	}
}
