package geom

import "testing"

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "partial overlap",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 50, Y: 50, Width: 100, Height: 100},
			want: Rect{X: 50, Y: 50, Width: 50, Height: 50},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 10, Y: 10, Width: 20, Height: 20},
			want: Rect{X: 10, Y: 10, Width: 20, Height: 20},
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 100, Y: 100, Width: 50, Height: 50},
			want: Rect{},
		},
		{
			name: "touching edges only",
			a:    Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    Rect{X: 50, Y: 0, Width: 50, Height: 50},
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect(%+v, %+v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect(%+v, %+v) = %+v, want %+v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestIntersectionArea(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 90, Y: 90, Width: 100, Height: 100}

	if got := a.IntersectionArea(b); got != 100 {
		t.Errorf("IntersectionArea = %d, want 100", got)
	}
	if got := a.IntersectionArea(Rect{X: 200, Y: 0, Width: 10, Height: 10}); got != 0 {
		t.Errorf("IntersectionArea of disjoint rects = %d, want 0", got)
	}
}

func TestUnion(t *testing.T) {
	a := Rect{X: 400, Y: 300, Width: 275, Height: 116}
	b := Rect{X: 400, Y: 416, Width: 275, Height: 116}

	want := Rect{X: 400, Y: 300, Width: 275, Height: 232}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("Union reversed = %+v, want %+v", got, want)
	}

	disjoint := Rect{X: 1000, Y: 0, Width: 10, Height: 10}
	want = Rect{X: 400, Y: 0, Width: 610, Height: 416}
	if got := a.Union(disjoint); got != want {
		t.Errorf("Union of disjoint rects = %+v, want %+v", got, want)
	}
}

func TestOverlapX(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Rect
		slack int
		want  bool
	}{
		{
			name: "overlapping extents",
			a:    Rect{X: 0, Width: 100}, b: Rect{X: 50, Width: 100},
			slack: 0, want: true,
		},
		{
			name: "separated beyond slack",
			a:    Rect{X: 0, Width: 100}, b: Rect{X: 130, Width: 100},
			slack: 20, want: false,
		},
		{
			name: "separated within slack",
			a:    Rect{X: 0, Width: 100}, b: Rect{X: 110, Width: 100},
			slack: 20, want: true,
		},
		{
			name: "identical extents",
			a:    Rect{X: 100, Width: 275}, b: Rect{X: 100, Width: 275},
			slack: 0, want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapX(tt.a, tt.b, tt.slack); got != tt.want {
				t.Errorf("OverlapX = %v, want %v", got, tt.want)
			}
			if got := OverlapX(tt.b, tt.a, tt.slack); got != tt.want {
				t.Errorf("OverlapX reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEdgeGapX(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	b := Rect{X: 100, Y: 0, Width: 80, Height: 50}

	if got := EdgeGapX(a, b); got != 0 {
		t.Errorf("EdgeGapX of touching rects = %d, want 0", got)
	}

	b.X = 112
	if got := EdgeGapX(a, b); got != 12 {
		t.Errorf("EdgeGapX = %d, want 12", got)
	}
	if got := EdgeGapX(b, a); got != 12 {
		t.Errorf("EdgeGapX reversed = %d, want 12", got)
	}

	// Overlapping extents report a negative separation.
	b.X = 60
	if got := EdgeGapX(a, b); got != -40 {
		t.Errorf("EdgeGapX of overlapping rects = %d, want -40", got)
	}
	if got := EdgeGapX(b, a); got != -40 {
		t.Errorf("EdgeGapX reversed = %d, want -40", got)
	}
}

func TestContainsRect(t *testing.T) {
	screen := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

	if !screen.ContainsRect(Rect{X: 100, Y: 100, Width: 275, Height: 116}) {
		t.Error("expected window inside screen to be contained")
	}
	if screen.ContainsRect(Rect{X: 1800, Y: 100, Width: 275, Height: 116}) {
		t.Error("expected window past the right edge not to be contained")
	}
	if !screen.ContainsRect(screen) {
		t.Error("expected screen to contain itself")
	}
}
