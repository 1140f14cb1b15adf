package infographics

import (
	"math"
	"testing"
)

func TestLabelTransformUpright(t *testing.T) {
	pos := Pt(600, 500)
	pl := LabelTransform(pos, math.Pi/3, false, 0, 0, 80)
	if pl.Angle != 0 {
		t.Errorf("Angle = %v, want 0", pl.Angle)
	}
	if pl.Position != pos {
		t.Errorf("Position = %v, want %v", pl.Position, pos)
	}
}

func TestLabelTransformUprightNudge(t *testing.T) {
	pl := LabelTransform(Pt(100, 100), 1.2, false, 0.5, -0.25, 80)
	if want := Pt(140, 80); !pointsEqual(pl.Position, want) {
		t.Errorf("Position = %v, want %v", pl.Position, want)
	}
}

func TestLabelTransformRotated(t *testing.T) {
	tests := []struct {
		name      string
		baseline  float64
		wantAngle float64
	}{
		{"east", 0, 0},
		{"south-east", math.Pi / 4, math.Pi / 4},
		{"south is kept", math.Pi / 2, math.Pi / 2},
		{"west flips", math.Pi, 0},
		{"south-west flips", 3 * math.Pi / 4, -math.Pi / 4},
		{"north flips to south", -math.Pi / 2, math.Pi / 2},
		{"past a full turn", 2*math.Pi + math.Pi/6, math.Pi / 6},
		{"near a full turn", 1.9 * math.Pi, -0.1 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := LabelTransform(Pt(0, 0), tt.baseline, true, 0, 0, 10)
			if !almostEqual(pl.Angle, tt.wantAngle) {
				t.Errorf("Angle = %v, want %v", pl.Angle, tt.wantAngle)
			}
		})
	}
}

func TestLabelTransformNudgeFollowsBaseline(t *testing.T) {
	// Baseline pointing straight down the screen: +dx moves down, +dy moves
	// toward the glyph bottoms, which is the -x side.
	pl := LabelTransform(Pt(0, 0), math.Pi/2, true, 1, 0.5, 10)
	if want := Pt(-5, 10); !pointsEqual(pl.Position, want) {
		t.Errorf("Position = %v, want %v", pl.Position, want)
	}
}

func TestLabelTransformNudgeUsesFlippedBaseline(t *testing.T) {
	// A west-pointing radial flips to an east-reading baseline, so +dx
	// still moves in reading direction (+x).
	pl := LabelTransform(Pt(0, 0), math.Pi, true, 1, 0, 10)
	if want := Pt(10, 0); !pointsEqual(pl.Position, want) {
		t.Errorf("Position = %v, want %v", pl.Position, want)
	}
}

func TestPlacementDirections(t *testing.T) {
	pl := Placement{Position: Pt(10, 20), Angle: 0.7}
	b, d := pl.BaselineDirection(), pl.DownDirection()
	if !almostEqual(b.Length(), 1) || !almostEqual(d.Length(), 1) {
		t.Errorf("directions not unit length: %v %v", b, d)
	}
	// Down is the baseline turned a quarter turn clockwise on screen.
	if want := PointOnCircle(Pt(0, 0), 1, pl.Angle+math.Pi/2); !pointsEqual(d, want) {
		t.Errorf("DownDirection() = %v, want %v", d, want)
	}
}

func TestPlacementSVG(t *testing.T) {
	tests := []struct {
		pl   Placement
		want string
	}{
		{Placement{Position: Pt(675, 325)}, "translate(675 325)"},
		{Placement{Position: Pt(1.5, 2), Angle: math.Pi / 4}, "translate(1.5 2) rotate(45)"},
	}
	for _, tt := range tests {
		if got := tt.pl.SVG(); got != tt.want {
			t.Errorf("SVG() = %q, want %q", got, tt.want)
		}
	}
}
