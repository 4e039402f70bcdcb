package gamemap

import "testing"

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", a, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"touching left edge", Rect{X: -5, Y: 0, W: 5, H: 5}, false},
		{"touching top edge", Rect{X: 0, Y: -5, W: 5, H: 5}, false},
		{"corner only", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"one pixel overlap", Rect{X: 9, Y: 9, W: 5, H: 5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Symmetry.
			if got := tc.b.Overlaps(a); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	for _, r := range []Rect{
		{X: 0, Y: 0, W: 1, H: 1},
		{X: -40, Y: 13, W: 25, H: 60},
		{X: 3760, Y: 2080, W: 80, H: 80},
	} {
		if !r.Overlaps(r) {
			t.Errorf("%+v should overlap itself", r)
		}
	}
}

func TestRectCenterAndTranslate(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 25, H: 60}
	cx, cy := r.Center()
	if cx != 22 || cy != 50 {
		t.Errorf("expected center (22,50), got (%d,%d)", cx, cy)
	}
	moved := r.Translate(3, -3)
	if moved.X != 13 || moved.Y != 17 || moved.W != 25 || moved.H != 60 {
		t.Errorf("unexpected translate result %+v", moved)
	}
	if r.X != 10 {
		t.Error("Translate must not modify the receiver")
	}
}

func TestContains(t *testing.T) {
	level := Rect{W: 100, H: 50}
	if !level.Contains(Rect{X: 75, Y: 0, W: 25, H: 50}) {
		t.Error("flush box should be contained")
	}
	if level.Contains(Rect{X: 76, Y: 0, W: 25, H: 50}) {
		t.Error("box past the right edge should not be contained")
	}
}
