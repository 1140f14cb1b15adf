package infographics

import "math"

// FullTurn is one complete revolution in radians.
const FullTurn = 2 * math.Pi

// fullTurnEpsilon absorbs rounding when a span is computed as 2π·w/total.
const fullTurnEpsilon = 1e-9

// IsFullTurn reports whether an angular span covers the whole circle.
func IsFullTurn(span float64) bool {
	return math.Abs(span) >= FullTurn-fullTurnEpsilon
}

// SectorPath returns the closed outline of the annular sector between the
// inner and outer radii from start to end (radians, clockwise on screen).
//
// The outline runs along the outer arc from start to end, across to the
// inner radius and back along the inner arc. With inner == 0 the return leg
// collapses onto the center and the result is a plain pie slice.
//
// A single SVG arc command cannot describe a complete circle (its endpoints
// would coincide), so spans of a full turn are drawn as two half-turn arcs
// meeting at the mid-angle. Spans beyond a full turn are drawn as one turn.
// A zero span yields a zero-area outline; a negative span runs
// counter-clockwise.
func SectorPath(center Point, outer, inner, start, end float64) *Path {
	p := NewPath()
	s := PointOnCircle(center, outer, start)
	p.MoveTo(s.X, s.Y)
	appendArc(p, center, outer, start, end)
	if inner > 0 {
		e := PointOnCircle(center, inner, clampTurn(start, end))
		p.LineTo(e.X, e.Y)
		appendArc(p, center, inner, clampTurn(start, end), start)
	} else {
		p.LineTo(center.X, center.Y)
	}
	p.Close()
	return p
}

// appendArc appends arc commands following the circle from one angle to
// another, splitting full turns.
func appendArc(p *Path, center Point, r, from, to float64) {
	span := to - from
	sweep := span >= 0
	if IsFullTurn(span) {
		to = clampTurn(from, to)
		mid := from + (to-from)/2
		m := PointOnCircle(center, r, mid)
		p.ArcTo(r, false, sweep, m.X, m.Y)
		e := PointOnCircle(center, r, to)
		p.ArcTo(r, false, sweep, e.X, e.Y)
		return
	}
	e := PointOnCircle(center, r, to)
	p.ArcTo(r, math.Abs(span) > math.Pi, sweep, e.X, e.Y)
}

// clampTurn limits end so that |end-start| never exceeds a full turn.
func clampTurn(start, end float64) float64 {
	switch {
	case end-start > FullTurn:
		return start + FullTurn
	case start-end > FullTurn:
		return start - FullTurn
	}
	return end
}
