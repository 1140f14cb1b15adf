package infographics

import (
	"math"
	"strings"
	"testing"
)

func TestPointOnCircle(t *testing.T) {
	c := Pt(500, 500)
	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{"east", 0, Pt(600, 500)},
		{"south", math.Pi / 2, Pt(500, 600)},
		{"west", math.Pi, Pt(400, 500)},
		{"north", -math.Pi / 2, Pt(500, 400)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointOnCircle(c, 100, tt.angle)
			if !pointsEqual(got, tt.want) {
				t.Errorf("PointOnCircle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func countArcs(p *Path) (arcs []ArcTo) {
	for _, e := range p.Elements() {
		if a, ok := e.(ArcTo); ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

func TestSectorPathPieSlice(t *testing.T) {
	c := Pt(500, 500)
	p := SectorPath(c, 400, 0, -math.Pi/2, 0)

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("len(elements) = %d, want 4 (M A L Z)", len(elems))
	}
	if m, ok := elems[0].(MoveTo); !ok || !pointsEqual(m.Point, Pt(500, 100)) {
		t.Errorf("elements[0] = %#v, want MoveTo (500,100)", elems[0])
	}
	arc, ok := elems[1].(ArcTo)
	if !ok {
		t.Fatalf("elements[1] = %T, want ArcTo", elems[1])
	}
	if arc.LargeArc || !arc.Sweep || !pointsEqual(arc.Point, Pt(900, 500)) {
		t.Errorf("arc = %+v, want small clockwise arc to (900,500)", arc)
	}
	if l, ok := elems[2].(LineTo); !ok || !pointsEqual(l.Point, c) {
		t.Errorf("elements[2] = %#v, want LineTo center", elems[2])
	}
	if _, ok := elems[3].(Close); !ok {
		t.Errorf("elements[3] = %T, want Close", elems[3])
	}
	if got, want := p.SVG(), "M 500,100 A 400,400 0 0,1 900,500 L 500,500 Z"; got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestSectorPathLargeArc(t *testing.T) {
	p := SectorPath(Pt(0, 0), 10, 0, 0, 1.5*math.Pi)
	arcs := countArcs(p)
	if len(arcs) != 1 || !arcs[0].LargeArc {
		t.Errorf("arcs = %+v, want one large arc", arcs)
	}
}

func TestSectorPathAnnular(t *testing.T) {
	c := Pt(500, 500)
	p := SectorPath(c, 400, 150, 0, math.Pi/2)
	arcs := countArcs(p)
	if len(arcs) != 2 {
		t.Fatalf("len(arcs) = %d, want 2", len(arcs))
	}
	if !arcs[0].Sweep || arcs[0].Radius != 400 {
		t.Errorf("outer arc = %+v, want clockwise radius 400", arcs[0])
	}
	if arcs[1].Sweep || arcs[1].Radius != 150 {
		t.Errorf("inner arc = %+v, want counter-clockwise radius 150", arcs[1])
	}
	if !pointsEqual(arcs[1].Point, Pt(650, 500)) {
		t.Errorf("inner arc ends at %v, want (650,500)", arcs[1].Point)
	}
}

func TestSectorPathFullTurn(t *testing.T) {
	c := Pt(500, 500)
	for _, inner := range []float64{0, 150} {
		p := SectorPath(c, 400, inner, -math.Pi/2, 1.5*math.Pi)
		arcs := countArcs(p)
		want := 2
		if inner > 0 {
			want = 4
		}
		if len(arcs) != want {
			t.Fatalf("inner=%v: len(arcs) = %d, want %d", inner, len(arcs), want)
		}
		// The first half-turn must stop opposite the start, not on it.
		if !pointsEqual(arcs[0].Point, Pt(500, 900)) {
			t.Errorf("inner=%v: first arc ends at %v, want (500,900)", inner, arcs[0].Point)
		}
		if !pointsEqual(arcs[1].Point, Pt(500, 100)) {
			t.Errorf("inner=%v: second arc ends at %v, want (500,100)", inner, arcs[1].Point)
		}
		for _, a := range arcs {
			if a.LargeArc {
				t.Errorf("inner=%v: half-turn arc must not set large-arc: %+v", inner, a)
			}
		}
	}
}

func TestSectorPathZeroSpan(t *testing.T) {
	p := SectorPath(Pt(500, 500), 400, 0, 1, 1)
	arcs := countArcs(p)
	if len(arcs) != 1 {
		t.Fatalf("len(arcs) = %d, want 1", len(arcs))
	}
	if !strings.HasSuffix(p.SVG(), "Z") {
		t.Errorf("zero span path not closed: %q", p.SVG())
	}
}

func TestSectorPathNegativeSpan(t *testing.T) {
	p := SectorPath(Pt(0, 0), 10, 0, 0, -math.Pi/4)
	arcs := countArcs(p)
	if len(arcs) != 1 || arcs[0].Sweep {
		t.Errorf("arcs = %+v, want one counter-clockwise arc", arcs)
	}
}

func TestIsFullTurn(t *testing.T) {
	tests := []struct {
		span float64
		want bool
	}{
		{FullTurn, true},
		{-FullTurn, true},
		{FullTurn - 1e-12, true},
		{3 * math.Pi, true},
		{math.Pi, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := IsFullTurn(tt.span); got != tt.want {
			t.Errorf("IsFullTurn(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}
