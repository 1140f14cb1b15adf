package donut

import (
	"math"

	"github.com/gogpu/infographics"
	"github.com/gogpu/infographics/svg"
)

// Generate makes a chart in style from dataset, with title centered in
// the chart (omitted when empty).
//
// Each wedge spans 2π·weight/total radians. The first wedge starts at the
// style's start angle and the rest follow clockwise in dataset order;
// wedge i is filled with the style's color i modulo the cycle length,
// whatever its weight or label. Zero-weight wedges produce zero-width
// sectors but still consume a color and keep their label.
//
// Generate fails with a *DegenerateDatasetError, before building anything,
// when the total weight is zero or not finite. Negative weights are
// accepted and draw counter-clockwise spans. The dataset is not modified.
func Generate(style *Style, dataset []Wedge, title string) (*Chart, error) {
	if style == nil {
		return nil, &ConfigurationError{Field: "style", Value: nil, Reason: "style is required"}
	}

	var total float64
	for _, w := range dataset {
		total += w.Weight
	}
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, &DegenerateDatasetError{Wedges: len(dataset), Total: total}
	}

	log := infographics.Logger()
	l := newLayout(style)

	body := svg.NewGroup()
	body.Attrs().Set("class", "chart")
	if l.stroke > 0 {
		body.Attrs().Set("stroke", style.borderColor)
		body.Attrs().Set("stroke-width", infographics.FormatNumber(l.stroke))
	}

	chart := &Chart{
		Graphic: svg.NewGraphic(ChartSize, ChartSize),
		Body:    body,
		Slices:  make([]Slice, len(dataset)),
	}

	// Angles come from the running weight rather than a running angle so
	// the last edge lands exactly one turn after the first.
	var cum float64
	for i, w := range dataset {
		if w.Weight < 0 {
			log.Warn("donut: negative wedge weight", "index", i, "label", w.Label, "weight", w.Weight)
		}
		start := style.startAngle + infographics.FullTurn*cum/total
		cum += w.Weight
		end := style.startAngle + infographics.FullTurn*cum/total

		sector := &svg.Sector{
			Center: l.center,
			Outer:  l.outer,
			Inner:  l.inner,
			Start:  start,
			End:    end,
			Sweep:  infographics.FullTurn * w.Weight / total,
			Fill:   style.WedgeColor(i),
		}
		sector.Attrs().Set("class", "wedge")
		body.Append(sector)

		chart.Slices[i] = Slice{Index: i, Wedge: w, Sector: sector}
		if w.Label != "" {
			chart.Slices[i].Label = l.label(w, start, end)
		}
	}

	if style.holeSize > 0 {
		chart.Hole = &svg.Disc{Center: l.center, Radius: l.inner, Fill: style.holeColor}
		chart.Hole.Attrs().Set("class", "hole")
		body.Append(chart.Hole)
	}
	if title != "" {
		chart.Title = l.newText(title, infographics.Placement{Position: l.center},
			style.titleSize*ChartSize, style.titleColor, "title")
		body.Append(chart.Title)
	}
	for _, s := range chart.Slices {
		if s.Label != nil {
			body.Append(s.Label)
		}
	}
	chart.Append(body)

	log.Debug("donut: generated chart",
		"wedges", len(dataset),
		"labels", len(chart.Labels()),
		"total", total,
		"hole", chart.Hole != nil,
		"title", title)
	return chart, nil
}

// layout holds the radii shared by every wedge of one chart.
type layout struct {
	style  *Style
	center infographics.Point
	stroke float64
	outer  float64
	inner  float64
	ring   float64 // radius of the label circle
}

func newLayout(style *Style) *layout {
	half := ChartSize / 2
	l := &layout{
		style:  style,
		center: infographics.Pt(half, half),
		stroke: style.borderSize * ChartSize,
	}
	// Inset the outer edge by half the stroke so the border stays inside
	// the viewBox.
	l.outer = half - l.stroke/2
	l.inner = style.holeSize * half
	l.ring = (l.outer + l.inner) / 2
	return l
}

// label places a wedge label halfway between the hole and the outer edge
// on the wedge's mid-angle.
func (l *layout) label(w Wedge, start, end float64) *svg.Text {
	mid := start + (end-start)/2
	size := l.style.labelSize * ChartSize
	pos := infographics.PointOnCircle(l.center, l.ring, mid)
	pl := infographics.LabelTransform(pos, mid, w.Options.Rotate, w.Options.DX, w.Options.DY, size)
	t := l.newText(w.Label, pl, size, l.style.labelColor, "label")
	l.checkFit(w, t, end-start)
	return t
}

func (l *layout) newText(content string, pl infographics.Placement, size float64, color, class string) *svg.Text {
	t := &svg.Text{
		Content:    content,
		Placement:  pl,
		FontSize:   size,
		FontFamily: l.style.fontFamily,
		FontWeight: l.style.fontWeight,
		Fill:       color,
		Class:      class,
	}
	if m := l.style.measurer; m != nil {
		if met, err := m.Metrics(size); err == nil {
			t.Baseline = met.MiddleShift()
			return t
		}
	}
	t.MiddleBaseline = true
	return t
}

// checkFit logs labels that are wider than the room their wedge offers:
// the ring thickness for rotated labels, the chord across the wedge at the
// label radius for upright ones.
func (l *layout) checkFit(w Wedge, t *svg.Text, span float64) {
	m := l.style.measurer
	if m == nil {
		return
	}
	width := m.Advance(t.Content, t.FontSize)
	room := l.outer - l.inner
	if !w.Options.Rotate {
		room = 2 * l.ring * math.Sin(math.Min(math.Abs(span), math.Pi)/2)
	}
	if width > room {
		infographics.Logger().Warn("donut: label wider than its wedge",
			"label", t.Content, "width", width, "room", room)
	}
}
