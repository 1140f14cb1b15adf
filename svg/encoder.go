package svg

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/gogpu/infographics"
)

// Namespace and document type of the generated markup.
const (
	Namespace   = "http://www.w3.org/2000/svg"
	Version     = "1.1"
	declaration = `<?xml version="1.0" encoding="UTF-8"?>`
	standalone  = `<?xml version="1.0" standalone="no"?>`
	doctype     = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`
)

// ErrReservedAttr is returned when a node's extra attributes name an
// attribute the encoder derives from the node's geometry.
var ErrReservedAttr = errors.New("svg: reserved attribute")

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderOptions)

type encoderOptions struct {
	doctype bool
}

func defaultEncoderOptions() encoderOptions {
	return encoderOptions{doctype: true}
}

// WithDoctype controls the SVG 1.1 DOCTYPE declaration (default true).
// Some strict XML consumers refuse external DTD references.
func WithDoctype(enabled bool) EncoderOption {
	return func(o *encoderOptions) {
		o.doctype = enabled
	}
}

// Encoder writes a primitive tree as SVG markup.
//
// Element bodies are produced by svgo; the encoder itself writes only the
// prolog and the <svg> start tags, which svgo cannot express for nested
// viewports or physical units.
type Encoder struct {
	cw     *countingWriter
	w      *bufio.Writer
	canvas *svgo.SVG
	opts   encoderOptions
	err    error
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	o := defaultEncoderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	return &Encoder{cw: cw, w: bw, canvas: svgo.New(bw), opts: o}
}

// Written returns the number of bytes written to the underlying writer.
func (e *Encoder) Written() int64 {
	return e.cw.n
}

// Encode writes g as a complete document and flushes the output.
// A write error is sticky: later calls return it again.
func (e *Encoder) Encode(g *Graphic) error {
	if g == nil {
		return fmt.Errorf("svg: encode nil graphic")
	}
	if e.err != nil {
		return e.err
	}
	if e.opts.doctype {
		e.writeString(standalone + "\n" + doctype + "\n")
	} else {
		e.writeString(declaration + "\n")
	}
	e.node(g, true)
	if err := e.w.Flush(); e.err == nil {
		e.err = err
	}
	return e.err
}

func (e *Encoder) node(n Node, root bool) {
	if e.err != nil {
		return
	}
	switch v := n.(type) {
	case *Graphic:
		e.graphic(v, root)
	case *Group:
		e.canvas.Group(newAttrList(v.Attrs()).list()...)
		e.children(v)
		e.canvas.Gend()
	case *Sector:
		if !e.check(v, "path", "d") {
			return
		}
		l := newAttrList(v.Attrs())
		l.addIf("fill", v.Fill)
		e.canvas.Path(v.Path().SVG(), l.list()...)
	case *Disc:
		if !e.check(v, "circle", "cx", "cy", "r") {
			return
		}
		l := newAttrList(v.Attrs())
		l.addIf("fill", v.Fill)
		e.canvas.Circle(v.Center.X, v.Center.Y, v.Radius, l.list()...)
	case *Rect:
		if !e.check(v, "rect", "x", "y", "width", "height") {
			return
		}
		l := newAttrList(v.Attrs())
		l.addIf("fill", v.Fill)
		e.canvas.Rect(v.X, v.Y, v.Width, v.Height, l.list()...)
	case *Text:
		e.text(v)
	}
}

func (e *Encoder) graphic(g *Graphic, root bool) {
	l := newAttrList(g.Attrs())
	if root {
		l.add("xmlns", Namespace)
		l.add("version", Version)
	} else {
		l.add("x", infographics.FormatNumber(g.X))
		l.add("y", infographics.FormatNumber(g.Y))
	}
	if g.Width > 0 {
		l.add("width", infographics.FormatNumber(g.Width)+g.Units)
	}
	if g.Height > 0 {
		l.add("height", infographics.FormatNumber(g.Height)+g.Units)
	}
	l.add("viewBox", "0 0 "+infographics.FormatNumber(g.ViewWidth)+" "+infographics.FormatNumber(g.ViewHeight))
	e.writeString("<svg " + strings.Join(l.list(), " ") + ">\n")
	e.children(&g.Group)
	e.canvas.End()
}

func (e *Encoder) text(t *Text) {
	if !e.check(t, "text", "x", "y") {
		return
	}
	l := newAttrList(t.Attrs())
	l.add("transform", t.Placement.SVG())
	l.addIf("class", t.Class)
	l.addIf("font-family", t.FontFamily)
	if t.FontSize > 0 {
		l.add("font-size", infographics.FormatNumber(t.FontSize))
	}
	l.addIf("font-weight", t.FontWeight)
	l.add("text-anchor", "middle")
	if t.MiddleBaseline {
		l.add("dominant-baseline", "middle")
	}
	l.add("stroke", "none")
	l.addIf("fill", t.Fill)
	e.canvas.Text(0, t.Baseline, t.Content, l.list()...)
}

func (e *Encoder) children(g *Group) {
	for _, ch := range g.Children() {
		e.node(ch, false)
	}
}

// check records an ErrReservedAttr if n carries one of the geometry
// attributes svgo writes positionally for tag.
func (e *Encoder) check(n Node, tag string, keys ...string) bool {
	for _, k := range keys {
		if _, ok := n.Attrs().Get(k); ok {
			e.err = fmt.Errorf("%w: %q on <%s>", ErrReservedAttr, k, tag)
			return false
		}
	}
	return true
}

func (e *Encoder) writeString(s string) {
	// bufio.Writer keeps the first error and Flush reports it.
	_, _ = e.w.WriteString(s)
}

// attrList collects computed attributes followed by a node's extra
// attributes. An extra attribute replaces a computed one of the same name.
type attrList struct {
	extra *Attrs
	out   []string
}

func newAttrList(extra *Attrs) *attrList {
	return &attrList{extra: extra}
}

func (l *attrList) add(key, value string) {
	if _, ok := l.extra.Get(key); ok {
		return
	}
	l.out = append(l.out, attr(key, value))
}

func (l *attrList) addIf(key, value string) {
	if value != "" {
		l.add(key, value)
	}
}

// list returns the attributes as svgo name="value" arguments.
func (l *attrList) list() []string {
	out := l.out
	for _, k := range l.extra.keys {
		out = append(out, attr(k, l.extra.vals[k]))
	}
	return out
}

func attr(key, value string) string {
	var sb strings.Builder
	sb.WriteString(key)
	sb.WriteString(`="`)
	_ = xml.EscapeText(&sb, []byte(value)) // strings.Builder never fails
	sb.WriteByte('"')
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
