// Package svg provides the drawable primitive tree produced by the chart
// generators and the single encoder that serializes it.
//
// The tree is a closed set of node kinds: Graphic (an <svg> viewport),
// Group, Sector, Disc, Rect and Text. Geometry lives in typed fields; any other
// presentation attribute can be attached with Attrs().Set. Children render
// in order, so earlier children are painted beneath later ones.
//
// Nodes are not safe for concurrent mutation. A finished tree may be
// encoded from several goroutines as long as nobody modifies it.
package svg

import (
	"github.com/gogpu/infographics"
)

// Kind identifies the type of a node.
type Kind uint8

const (
	KindGraphic Kind = iota // <svg> viewport
	KindGroup               // <g>
	KindSector              // annular sector <path>
	KindDisc                // <circle>
	KindText                // <text>
	KindRect                // <rect>
)

var kindNames = [...]string{
	KindGraphic: "Graphic",
	KindGroup:   "Group",
	KindSector:  "Sector",
	KindDisc:    "Disc",
	KindText:    "Text",
	KindRect:    "Rect",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Node is implemented by every primitive in the tree.
type Node interface {
	// Kind returns the node kind.
	Kind() Kind
	// Attrs returns the node's extra presentation attributes.
	Attrs() *Attrs
	// Clone returns a deep copy of the node and its children.
	Clone() Node

	isNode()
}

// Group is an ordered container of child nodes.
type Group struct {
	attrs    Attrs
	children []Node
}

// NewGroup creates a group holding children.
func NewGroup(children ...Node) *Group {
	g := &Group{}
	g.Append(children...)
	return g
}

func (*Group) isNode() {}

// Kind implements Node.
func (*Group) Kind() Kind { return KindGroup }

// Attrs implements Node.
func (g *Group) Attrs() *Attrs { return &g.attrs }

// Clone implements Node.
func (g *Group) Clone() Node {
	c := g.cloneGroup()
	return &c
}

func (g *Group) cloneGroup() Group {
	c := Group{attrs: g.attrs.clone(), children: make([]Node, len(g.children))}
	for i, ch := range g.children {
		c.children[i] = ch.Clone()
	}
	return c
}

// Append adds nodes after the existing children. Nil nodes are skipped.
func (g *Group) Append(nodes ...Node) {
	for _, n := range nodes {
		if n != nil {
			g.children = append(g.children, n)
		}
	}
}

// Insert places n before the child at index i. An index past the end
// appends; a negative index inserts first.
func (g *Group) Insert(i int, n Node) {
	if n == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g.children) {
		g.children = append(g.children, n)
		return
	}
	g.children = append(g.children, nil)
	copy(g.children[i+1:], g.children[i:])
	g.children[i] = n
}

// Children returns the child nodes in paint order.
func (g *Group) Children() []Node {
	return g.children
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// Graphic is an <svg> viewport: a group with its own user-space coordinate
// system of ViewWidth x ViewHeight units.
//
// Width and Height give the rendered size in the parent's units (or in
// Units for a root graphic); zero leaves them unset, which makes a nested
// graphic fill its parent. X and Y offset a nested graphic.
type Graphic struct {
	Group

	ViewWidth, ViewHeight float64
	X, Y                  float64
	Width, Height         float64
	Units                 string
}

// NewGraphic creates an empty graphic with a viewBox of w x h user units.
func NewGraphic(w, h float64) *Graphic {
	return &Graphic{ViewWidth: w, ViewHeight: h}
}

// Kind implements Node.
func (*Graphic) Kind() Kind { return KindGraphic }

// Clone implements Node.
func (g *Graphic) Clone() Node {
	return g.CloneGraphic()
}

// CloneGraphic returns a deep copy of g.
func (g *Graphic) CloneGraphic() *Graphic {
	c := *g
	c.Group = g.cloneGroup()
	return &c
}

// Aspect returns ViewWidth / ViewHeight, or 1 for an empty viewBox.
func (g *Graphic) Aspect() float64 {
	if g.ViewWidth <= 0 || g.ViewHeight <= 0 {
		return 1
	}
	return g.ViewWidth / g.ViewHeight
}

// Sector is a filled annular sector; Inner == 0 makes it a pie slice.
// Start and End are in radians, clockwise on screen from +x.
//
// Sweep, when non-zero, is the sector's own angular extent. Generators that
// place sectors back to back derive End from a running sum, and End - Start
// loses the extent of a tiny sector next to a huge one.
type Sector struct {
	attrs Attrs

	Center       infographics.Point
	Outer, Inner float64
	Start, End   float64
	Sweep        float64
	Fill         string
}

func (*Sector) isNode() {}

// Kind implements Node.
func (*Sector) Kind() Kind { return KindSector }

// Attrs implements Node.
func (s *Sector) Attrs() *Attrs { return &s.attrs }

// Clone implements Node.
func (s *Sector) Clone() Node {
	c := *s
	c.attrs = s.attrs.clone()
	return &c
}

// Span returns Sweep, or End - Start when Sweep is unset.
func (s *Sector) Span() float64 {
	if s.Sweep != 0 {
		return s.Sweep
	}
	return s.End - s.Start
}

// Path returns the sector outline.
func (s *Sector) Path() *infographics.Path {
	return infographics.SectorPath(s.Center, s.Outer, s.Inner, s.Start, s.End)
}

// Disc is a filled circle.
type Disc struct {
	attrs Attrs

	Center infographics.Point
	Radius float64
	Fill   string
}

func (*Disc) isNode() {}

// Kind implements Node.
func (*Disc) Kind() Kind { return KindDisc }

// Attrs implements Node.
func (d *Disc) Attrs() *Attrs { return &d.attrs }

// Clone implements Node.
func (d *Disc) Clone() Node {
	c := *d
	c.attrs = d.attrs.clone()
	return &c
}

// Rect is a filled axis-aligned rectangle, typically a background.
type Rect struct {
	attrs Attrs

	X, Y, Width, Height float64
	Fill                string
}

func (*Rect) isNode() {}

// Kind implements Node.
func (*Rect) Kind() Kind { return KindRect }

// Attrs implements Node.
func (r *Rect) Attrs() *Attrs { return &r.attrs }

// Clone implements Node.
func (r *Rect) Clone() Node {
	c := *r
	c.attrs = r.attrs.clone()
	return &c
}

// Text is a single line of text anchored at its placement.
//
// The text is horizontally centered on the anchor. With MiddleBaseline the
// renderer centers it vertically (dominant-baseline:middle); otherwise the
// baseline is moved Baseline units toward the bottom of the glyphs, which
// works in renderers that ignore dominant-baseline.
type Text struct {
	attrs Attrs

	Content        string
	Placement      infographics.Placement
	Baseline       float64
	MiddleBaseline bool

	FontSize   float64
	FontFamily string
	FontWeight string
	Fill       string
	Class      string
}

func (*Text) isNode() {}

// Kind implements Node.
func (*Text) Kind() Kind { return KindText }

// Attrs implements Node.
func (t *Text) Attrs() *Attrs { return &t.attrs }

// Clone implements Node.
func (t *Text) Clone() Node {
	c := *t
	c.attrs = t.attrs.clone()
	return &c
}
