package infographics

import "strings"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc from the current point to Point.
// The flags follow SVG elliptical-arc semantics: LargeArc selects the arc
// longer than half a turn and Sweep selects the clockwise (increasing angle)
// direction in a y-down coordinate system.
type ArcTo struct {
	Radius   float64
	LargeArc bool
	Sweep    bool
	Point    Point
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a circular arc of radius r to (x, y).
func (p *Path) ArcTo(r float64, largeArc, sweep bool, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, ArcTo{Radius: r, LargeArc: largeArc, Sweep: sweep, Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// SVG renders the path as SVG path data ("M x,y A r,r 0 large,sweep x,y L x,y Z").
func (p *Path) SVG() string {
	var sb strings.Builder
	writePoint := func(pt Point) {
		sb.WriteString(FormatNumber(pt.X))
		sb.WriteByte(',')
		sb.WriteString(FormatNumber(pt.Y))
	}
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			sb.WriteString("M ")
			writePoint(e.Point)
		case LineTo:
			sb.WriteString("L ")
			writePoint(e.Point)
		case ArcTo:
			r := FormatNumber(e.Radius)
			sb.WriteString("A ")
			sb.WriteString(r)
			sb.WriteByte(',')
			sb.WriteString(r)
			sb.WriteString(" 0 ")
			sb.WriteString(flag(e.LargeArc))
			sb.WriteByte(',')
			sb.WriteString(flag(e.Sweep))
			sb.WriteByte(' ')
			writePoint(e.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
