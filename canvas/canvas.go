// Package canvas lays out generated graphics on a page and writes the page
// as a standalone SVG document.
//
// A Canvas is measured in page units (centimeters by default). Internally
// each page unit is Scale user units, so nested graphics keep their own
// viewBox and are positioned with plain numbers.
//
//	page, _ := canvas.New(21, 29.7)
//	_ = page.AddGraphic(chart.Graphic, canvas.At(2, 2), canvas.Width(10))
//	_ = page.Write("report.svg")
package canvas

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/infographics"
	"github.com/gogpu/infographics/svg"
)

// Page defaults.
const (
	DefaultUnits = "cm"
	DefaultScale = 100.0
)

// ErrInvalidSize is returned for non-positive or non-finite page or
// placement dimensions.
var ErrInvalidSize = errors.New("canvas: invalid size")

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	units string
	scale float64
}

// WithUnits sets the unit suffix of the page width and height ("cm", "mm",
// "in", "px", ...).
func WithUnits(units string) Option {
	return func(o *options) { o.units = units }
}

// WithScale sets the number of user units per page unit.
func WithScale(scale float64) Option {
	return func(o *options) { o.scale = scale }
}

// Canvas is a page holding graphics and annotations.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	root  *svg.Graphic
	scale float64
}

// New creates an empty page of width x height page units.
func New(width, height float64, opts ...Option) (*Canvas, error) {
	o := options{units: DefaultUnits, scale: DefaultScale}
	for _, opt := range opts {
		opt(&o)
	}
	if !positive(width) || !positive(height) {
		return nil, fmt.Errorf("%w: page %vx%v", ErrInvalidSize, width, height)
	}
	if !positive(o.scale) {
		return nil, fmt.Errorf("%w: scale %v", ErrInvalidSize, o.scale)
	}

	root := svg.NewGraphic(width*o.scale, height*o.scale)
	root.Width = width
	root.Height = height
	root.Units = o.units
	return &Canvas{root: root, scale: o.scale}, nil
}

// Width returns the page width in page units.
func (c *Canvas) Width() float64 { return c.root.Width }

// Height returns the page height in page units.
func (c *Canvas) Height() float64 { return c.root.Height }

// Units returns the page unit suffix.
func (c *Canvas) Units() string { return c.root.Units }

// Scale returns the number of user units per page unit.
func (c *Canvas) Scale() float64 { return c.scale }

// Graphic returns the page's root graphic. Changes to it show up in the
// written document.
func (c *Canvas) Graphic() *svg.Graphic { return c.root }

// Append adds page-level nodes (backgrounds, captions, rules) after the
// existing content. Node coordinates are user units.
func (c *Canvas) Append(nodes ...svg.Node) {
	c.root.Append(nodes...)
}

// PlaceOption positions a graphic on the page.
type PlaceOption func(*placement)

type placement struct {
	x, y          float64
	width, height float64
}

// At puts the graphic's top-left corner at (x, y) page units.
func At(x, y float64) PlaceOption {
	return func(p *placement) { p.x, p.y = x, y }
}

// Width sets the graphic's rendered width in page units.
func Width(w float64) PlaceOption {
	return func(p *placement) { p.width = w }
}

// Height sets the graphic's rendered height in page units.
func Height(h float64) PlaceOption {
	return func(p *placement) { p.height = h }
}

// AddGraphic places a copy of g on the page. When only one of Width or
// Height is given the other follows g's aspect ratio; when neither is
// given the graphic spans the page width (or the height, for graphics
// taller than the page's proportions allow).
//
// Later changes to g do not affect the page.
func (c *Canvas) AddGraphic(g *svg.Graphic, opts ...PlaceOption) error {
	if g == nil {
		return errors.New("canvas: nil graphic")
	}
	var p placement
	for _, opt := range opts {
		opt(&p)
	}
	if !finite(p.x) || !finite(p.y) || p.width < 0 || p.height < 0 || !finite(p.width) || !finite(p.height) {
		return fmt.Errorf("%w: placement at (%v, %v) size %vx%v", ErrInvalidSize, p.x, p.y, p.width, p.height)
	}

	aspect := g.Aspect()
	switch {
	case p.width == 0 && p.height == 0:
		p.width = c.root.Width
		p.height = p.width / aspect
		if p.height > c.root.Height {
			p.height = c.root.Height
			p.width = p.height * aspect
		}
	case p.height == 0:
		p.height = p.width / aspect
	case p.width == 0:
		p.width = p.height * aspect
	}

	nested := g.CloneGraphic()
	nested.X = p.x * c.scale
	nested.Y = p.y * c.scale
	nested.Width = p.width * c.scale
	nested.Height = p.height * c.scale
	nested.Units = ""
	c.root.Append(nested)

	infographics.Logger().Debug("canvas: placed graphic",
		"x", p.x, "y", p.y, "width", p.width, "height", p.height, "units", c.root.Units)
	return nil
}

// WriteOption configures document output.
type WriteOption func(*writeOptions)

type writeOptions struct {
	doctype bool
}

// OmitDoctype drops the SVG 1.1 DOCTYPE and writes a plain XML declaration.
func OmitDoctype() WriteOption {
	return func(o *writeOptions) { o.doctype = false }
}

func (c *Canvas) encoder(w io.Writer, opts []WriteOption) *svg.Encoder {
	o := writeOptions{doctype: true}
	for _, opt := range opts {
		opt(&o)
	}
	return svg.NewEncoder(w, svg.WithDoctype(o.doctype))
}

// WriteTo writes the page as an SVG document to w and returns the number
// of bytes written.
func (c *Canvas) WriteTo(w io.Writer, opts ...WriteOption) (int64, error) {
	enc := c.encoder(w, opts)
	err := enc.Encode(c.root)
	return enc.Written(), err
}

// Write writes the page as an SVG document to the file at path, replacing
// any existing file. On failure no partial file is left behind.
func (c *Canvas) Write(path string, opts ...WriteOption) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("canvas: close %s: %w", path, cerr))
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	n, err := c.WriteTo(f, opts...)
	if err != nil {
		return fmt.Errorf("canvas: write %s: %w", path, err)
	}
	infographics.Logger().Debug("canvas: wrote document", "path", path, "bytes", n)
	return nil
}

// MakeGraphic writes g alone on a square page widthCm centimeters wide.
func MakeGraphic(g *svg.Graphic, path string, widthCm float64) error {
	page, err := New(widthCm, widthCm)
	if err != nil {
		return err
	}
	if err := page.AddGraphic(g, Width(widthCm)); err != nil {
		return err
	}
	return page.Write(path)
}

func positive(v float64) bool {
	return v > 0 && finite(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
