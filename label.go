package infographics

import (
	"math"
	"strings"
)

// Placement positions a text anchor: the anchor sits at Position and the
// text baseline runs at Angle radians (clockwise on screen) from +x.
type Placement struct {
	Position Point
	Angle    float64
}

// Degrees returns the baseline angle in degrees.
func (pl Placement) Degrees() float64 {
	return pl.Angle * 180 / math.Pi
}

// SVG returns the placement as an SVG transform list,
// "translate(x y) rotate(deg)". The rotation is omitted for upright text.
func (pl Placement) SVG() string {
	var sb strings.Builder
	sb.WriteString("translate(")
	sb.WriteString(FormatNumber(pl.Position.X))
	sb.WriteByte(' ')
	sb.WriteString(FormatNumber(pl.Position.Y))
	sb.WriteByte(')')
	if deg := FormatNumber(pl.Degrees()); deg != "0" {
		sb.WriteString(" rotate(")
		sb.WriteString(deg)
		sb.WriteByte(')')
	}
	return sb.String()
}

// BaselineDirection returns the unit vector along the baseline in reading
// direction.
func (pl Placement) BaselineDirection() Point {
	return Pt(math.Cos(pl.Angle), math.Sin(pl.Angle))
}

// DownDirection returns the unit vector perpendicular to the baseline,
// pointing toward the bottom of the glyphs.
func (pl Placement) DownDirection() Point {
	return Pt(-math.Sin(pl.Angle), math.Cos(pl.Angle))
}

// LabelTransform places a label anchored at position.
//
// Without rotate the label is upright. With rotate the baseline follows
// baselineAngle (typically the radial through a wedge's mid-angle); angles
// that would render the text upside down are turned by half a revolution so
// the label always reads left to right.
//
// The nudge is measured in em: dx*fontSize along the final baseline and
// dy*fontSize toward the bottom of the glyphs. It is always relative to the
// text frame, never to the chart axes.
func LabelTransform(position Point, baselineAngle float64, rotate bool, dx, dy, fontSize float64) Placement {
	pl := Placement{Position: position}
	if rotate {
		pl.Angle = uprightAngle(baselineAngle)
	}
	nudge := pl.BaselineDirection().Mul(dx * fontSize).
		Add(pl.DownDirection().Mul(dy * fontSize))
	pl.Position = pl.Position.Add(nudge)
	return pl
}

// uprightAngle normalizes a to (-π/2, π/2].
func uprightAngle(a float64) float64 {
	a = math.Remainder(a, FullTurn) // [-π, π]
	switch {
	case a > math.Pi/2:
		a -= math.Pi
	case a <= -math.Pi/2:
		a += math.Pi
	}
	return a
}
