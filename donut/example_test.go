package donut_test

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/gogpu/infographics/donut"
	"github.com/gogpu/infographics/svg"
)

func ExampleGenerate() {
	chart, err := donut.Generate(donut.DefaultStyle(), []donut.Wedge{
		donut.MkWedge(50, "Go"),
		donut.MkWedge(25, "Rust"),
		donut.MkWedge(25, "Zig", donut.Rotate(true)),
	}, "Shares")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range chart.Slices {
		fmt.Printf("%s %s %.0f°\n", s.Wedge.Label, s.Sector.Fill, s.Sector.Span()*180/math.Pi)
	}
	fmt.Println(chart.Title.Content, chart.Hole != nil)
	// Output:
	// Go red 180°
	// Rust blue 90°
	// Zig green 90°
	// Shares true
}

func ExampleNewStyle() {
	_, err := donut.NewStyle(donut.WithHoleSize(1.5))
	fmt.Println(err)
	fmt.Println(errors.Is(err, donut.ErrConfiguration))
	// Output:
	// donut: invalid style hole_size=1.5: must be in [0, 1)
	// true
}

func ExampleStyle_Generate() {
	pie, err := donut.NewStyle(donut.WithHoleSize(0), donut.WithWedgeColors("#909090", "#c0c0c0"))
	if err != nil {
		panic(err)
	}
	chart, err := pie.Generate([]donut.Wedge{donut.MkWedge(1, ""), donut.MkWedge(3, "")}, "")
	if err != nil {
		panic(err)
	}
	if err := svg.NewEncoder(os.Stdout, svg.WithDoctype(false)).Encode(chart.Graphic); err != nil {
		panic(err)
	}
}
