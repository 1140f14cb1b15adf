// Package infographics provides the geometry kernel for simple vector
// infographics: donut and pie charts rendered as SVG.
//
// # Overview
//
// The module is organized into:
//   - infographics (this package): Point, Path, Placement and the pure chart
//     geometry functions PointOnCircle, SectorPath and LabelTransform
//   - svg: the drawable primitive tree (Graphic, Group, Sector, Disc, Rect, Text)
//     and its single Encoder
//   - donut: Style, Wedge and the chart generator
//   - canvas: a page that hosts generated charts and writes them to storage
//   - text: optional font metrics for label placement
//
// # Quick Start
//
//	style, err := donut.NewStyle(donut.WithHoleSize(0.4))
//	if err != nil {
//		return err
//	}
//	chart, err := style.Generate([]donut.Wedge{
//		donut.MkWedge(25, "Fee"),
//		donut.MkWedge(25, "Fi"),
//		donut.MkWedge(5, "smell", donut.Rotate(true), donut.DX(0.5)),
//	}, "Giant")
//	if err != nil {
//		return err
//	}
//	return canvas.MakeGraphic(chart.Graphic, "giant.svg", 10)
//
// # Coordinate System
//
// Uses SVG user-space coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
//
// All functions in this package are pure and safe for concurrent use.
package infographics

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
