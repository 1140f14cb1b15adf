// Package donut generates donut and pie charts as SVG primitive trees.
//
// A donut chart is a pie chart with a hole; a pie chart is simply a donut
// whose style has a hole size of zero. Build a Style once, then Generate
// any number of charts from it:
//
//	style, err := donut.NewStyle(donut.WithHoleSize(0.4), donut.WithStartAngle(0))
//	if err != nil {
//		return err
//	}
//	chart, err := style.Generate([]donut.Wedge{
//		donut.MkWedge(25, "Fee"),
//		donut.MkWedge(25, "Fi"),
//		donut.MkWedge(5, "smell", donut.Rotate(true), donut.DX(0.5)),
//	}, "Giants")
//
// The result is owned by the caller and can be annotated, placed on a
// canvas.Canvas or encoded directly with svg.Encoder.
//
// Generation is a pure computation. A Style is read-only, so one Style can
// serve concurrent Generate calls from many goroutines.
package donut
