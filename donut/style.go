package donut

import (
	"math"

	"github.com/gogpu/infographics/text"
)

// ChartSize is the width and height of every generated chart in user
// units. All style sizes are fractions of it, so its value only affects
// the numbers in the markup, never the rendered proportions.
const ChartSize = 1000.0

// Style defaults. The defaults suit charts of five to ten wedges with
// one-word labels.
const (
	DefaultBorderSize  = 0.01
	DefaultHoleSize    = 0.3
	DefaultTitleSize   = 0.08
	DefaultLabelSize   = 0.08
	DefaultBorderColor = "white"
	DefaultHoleColor   = "silver"
	DefaultTitleColor  = "black"
	DefaultLabelColor  = "white"
	DefaultStartAngle  = -math.Pi / 2 // due north
	DefaultFontFamily  = "sans-serif"
	DefaultFontWeight  = "bold"
)

// DefaultWedgeColors returns the default wedge fill cycle.
func DefaultWedgeColors() []string {
	return []string{"red", "blue", "green", "orange", "teal", "brown", "magenta", "cyan"}
}

// Style is an immutable set of visual parameters for donut and pie charts.
// A Style describes how charts look, not a chart; create charts with
// Generate. A Style is safe to share between goroutines.
//
// Sizes are fractions of the overall (square) chart: a hole size of 0.25
// is a quarter of the chart width. Colors are passed to the output
// unchanged, so any SVG color works ("pink", "rgb(100,0,0)", "#A9A9A9").
type Style struct {
	borderSize float64
	holeSize   float64
	titleSize  float64
	labelSize  float64

	borderColor string
	holeColor   string
	titleColor  string
	labelColor  string
	wedgeColors []string

	startAngle float64
	fontFamily string
	fontWeight string

	measurer *text.Measurer
}

// StyleOption configures a Style during creation.
//
// Example:
//
//	style, err := donut.NewStyle(
//		donut.WithHoleSize(0.4),
//		donut.WithWedgeColors("#909090", "#a0a0a0", "#b0b0b0"),
//		donut.WithStartAngle(0),
//	)
type StyleOption func(*Style)

// WithBorderSize sets the relative thickness of wedge, hole and outline
// borders. Zero disables borders.
func WithBorderSize(v float64) StyleOption {
	return func(s *Style) { s.borderSize = v }
}

// WithHoleSize sets the relative diameter of the central hole.
// Zero produces a pie chart.
func WithHoleSize(v float64) StyleOption {
	return func(s *Style) { s.holeSize = v }
}

// WithTitleSize sets the relative em size of the title font.
func WithTitleSize(v float64) StyleOption {
	return func(s *Style) { s.titleSize = v }
}

// WithLabelSize sets the relative em size of the wedge label font.
func WithLabelSize(v float64) StyleOption {
	return func(s *Style) { s.labelSize = v }
}

// WithBorderColor sets the stroke color for wedge, hole and outlines.
func WithBorderColor(c string) StyleOption {
	return func(s *Style) { s.borderColor = c }
}

// WithHoleColor sets the fill color of the hole.
func WithHoleColor(c string) StyleOption {
	return func(s *Style) { s.holeColor = c }
}

// WithTitleColor sets the title text color.
func WithTitleColor(c string) StyleOption {
	return func(s *Style) { s.titleColor = c }
}

// WithLabelColor sets the wedge label text color.
func WithLabelColor(c string) StyleOption {
	return func(s *Style) { s.labelColor = c }
}

// WithWedgeColors sets the wedge fill cycle. Wedge i is filled with
// colors[i % len(colors)]. The slice is copied.
func WithWedgeColors(colors ...string) StyleOption {
	c := make([]string, len(colors))
	copy(c, colors)
	return func(s *Style) { s.wedgeColors = c }
}

// WithStartAngle sets the leading edge of the first wedge in radians:
// 0 is east, -π/2 (the default) is north, positive is clockwise.
func WithStartAngle(a float64) StyleOption {
	return func(s *Style) { s.startAngle = a }
}

// WithFontFamily sets the font family written for titles and labels.
func WithFontFamily(family string) StyleOption {
	return func(s *Style) { s.fontFamily = family }
}

// WithFontWeight sets the font weight written for titles and labels.
// An empty weight leaves it to the renderer.
func WithFontWeight(weight string) StyleOption {
	return func(s *Style) { s.fontWeight = weight }
}

// WithMeasurer enables font metrics: text gets an explicit baseline shift
// instead of dominant-baseline, and overflowing labels are logged.
// Pass nil to disable.
func WithMeasurer(m *text.Measurer) StyleOption {
	return func(s *Style) { s.measurer = m }
}

func defaultStyle() Style {
	return Style{
		borderSize:  DefaultBorderSize,
		holeSize:    DefaultHoleSize,
		titleSize:   DefaultTitleSize,
		labelSize:   DefaultLabelSize,
		borderColor: DefaultBorderColor,
		holeColor:   DefaultHoleColor,
		titleColor:  DefaultTitleColor,
		labelColor:  DefaultLabelColor,
		wedgeColors: DefaultWedgeColors(),
		startAngle:  DefaultStartAngle,
		fontFamily:  DefaultFontFamily,
		fontWeight:  DefaultFontWeight,
	}
}

// NewStyle creates a style from the defaults and the given overrides.
// It returns a *ConfigurationError if a size is outside [0, 1), the start
// angle is not finite, or the wedge color cycle is empty.
func NewStyle(opts ...StyleOption) (*Style, error) {
	s := defaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultStyle returns a new Style with every parameter at its default.
func DefaultStyle() *Style {
	s := defaultStyle()
	return &s
}

func (s *Style) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"border_size", s.borderSize},
		{"hole_size", s.holeSize},
		{"title_size", s.titleSize},
		{"label_size", s.labelSize},
	} {
		if math.IsNaN(f.v) || f.v < 0 || f.v >= 1 {
			return &ConfigurationError{Field: f.name, Value: f.v, Reason: "must be in [0, 1)"}
		}
	}
	if math.IsNaN(s.startAngle) || math.IsInf(s.startAngle, 0) {
		return &ConfigurationError{Field: "start_angle", Value: s.startAngle, Reason: "must be finite"}
	}
	if len(s.wedgeColors) == 0 {
		return &ConfigurationError{Field: "wedge_colors", Value: s.wedgeColors, Reason: "must not be empty"}
	}
	for i, c := range s.wedgeColors {
		if c == "" {
			return &ConfigurationError{Field: "wedge_colors", Value: i, Reason: "color must not be empty"}
		}
	}
	return nil
}

// BorderSize returns the relative border thickness.
func (s *Style) BorderSize() float64 { return s.borderSize }

// HoleSize returns the relative hole diameter.
func (s *Style) HoleSize() float64 { return s.holeSize }

// TitleSize returns the relative title font size.
func (s *Style) TitleSize() float64 { return s.titleSize }

// LabelSize returns the relative label font size.
func (s *Style) LabelSize() float64 { return s.labelSize }

// BorderColor returns the border stroke color.
func (s *Style) BorderColor() string { return s.borderColor }

// HoleColor returns the hole fill color.
func (s *Style) HoleColor() string { return s.holeColor }

// TitleColor returns the title color.
func (s *Style) TitleColor() string { return s.titleColor }

// LabelColor returns the label color.
func (s *Style) LabelColor() string { return s.labelColor }

// WedgeColors returns a copy of the wedge fill cycle.
func (s *Style) WedgeColors() []string {
	c := make([]string, len(s.wedgeColors))
	copy(c, s.wedgeColors)
	return c
}

// WedgeColor returns the fill for the wedge at index i.
func (s *Style) WedgeColor(i int) string {
	n := len(s.wedgeColors)
	return s.wedgeColors[((i%n)+n)%n]
}

// StartAngle returns the first wedge's leading edge in radians.
func (s *Style) StartAngle() float64 { return s.startAngle }

// FontFamily returns the text font family.
func (s *Style) FontFamily() string { return s.fontFamily }

// FontWeight returns the text font weight.
func (s *Style) FontWeight() string { return s.fontWeight }

// Measurer returns the configured font measurer, or nil.
func (s *Style) Measurer() *text.Measurer { return s.measurer }

// Generate makes a chart in this style. See the package-level Generate.
func (s *Style) Generate(dataset []Wedge, title string) (*Chart, error) {
	return Generate(s, dataset, title)
}
