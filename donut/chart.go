package donut

import "github.com/gogpu/infographics/svg"

// Slice links a dataset wedge to the primitives generated for it.
type Slice struct {
	// Index is the wedge's position in the dataset.
	Index int
	// Wedge is a copy of the dataset entry.
	Wedge Wedge
	// Sector is the wedge's filled shape.
	Sector *svg.Sector
	// Label is the wedge's text, or nil when the wedge has no label.
	Label *svg.Text
}

// Chart is a generated donut or pie chart: a ChartSize x ChartSize graphic
// plus typed handles into its primitive tree.
//
// The tree under Graphic is
//
//	Graphic
//	└── Group (class "chart", border stroke)
//	    ├── Sector ... (dataset order)
//	    ├── Disc       (hole, only when the style has one)
//	    ├── Text       (title, only when non-empty)
//	    └── Text ...   (labels of wedges with non-empty labels)
//
// Callers may annotate Graphic (for example insert a background before the
// chart group); the handles keep pointing at the generated nodes.
type Chart struct {
	*svg.Graphic

	// Body is the group holding every generated primitive.
	Body *svg.Group
	// Slices holds one entry per dataset wedge, in dataset order.
	Slices []Slice
	// Hole is the hole disc, or nil for a pie chart.
	Hole *svg.Disc
	// Title is the title text, or nil when no title was given.
	Title *svg.Text
}

// Sectors returns the wedge sectors in dataset order.
func (c *Chart) Sectors() []*svg.Sector {
	out := make([]*svg.Sector, len(c.Slices))
	for i, s := range c.Slices {
		out[i] = s.Sector
	}
	return out
}

// Labels returns the label texts in dataset order, skipping unlabeled wedges.
func (c *Chart) Labels() []*svg.Text {
	out := make([]*svg.Text, 0, len(c.Slices))
	for _, s := range c.Slices {
		if s.Label != nil {
			out = append(out, s.Label)
		}
	}
	return out
}
