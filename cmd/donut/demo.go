package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/infographics"
	"github.com/gogpu/infographics/canvas"
	"github.com/gogpu/infographics/donut"
	"github.com/gogpu/infographics/internal/config"
	"github.com/gogpu/infographics/svg"
)

func newDemoCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a set of example charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return err
			}
			for _, d := range demos {
				path := filepath.Join(dir, d.name+".svg")
				if err := d.write(st, path); err != nil {
					return fmt.Errorf("demo %s: %w", d.name, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().String("dir", ".", "output directory")
	return cmd
}

type demo struct {
	name  string
	write func(st *state, path string) error
}

var demos = []demo{
	{"basic", writeBasic},
	{"labels", writeLabels},
	{"custom", writeCustom},
	{"canvas", writeCanvas},
	{"annotate", writeAnnotate},
}

func giants(extra ...donut.Wedge) []donut.Wedge {
	return append([]donut.Wedge{
		donut.MkWedge(25, "Fee"),
		donut.MkWedge(25, "Fi"),
		donut.MkWedge(25, "Fo"),
		donut.MkWedge(25, "Fum"),
	}, extra...)
}

// grayStyle is the muted style of the custom and canvas demos.
func grayStyle() (*donut.Style, error) {
	return donut.NewStyle(
		donut.WithHoleSize(0.4),
		donut.WithHoleColor("darkseagreen"),
		donut.WithTitleColor("yellow"),
		donut.WithLabelSize(0.06),
		donut.WithLabelColor("black"),
		donut.WithWedgeColors("#909090", "#a0a0a0", "#b0b0b0", "#c0c0c0", "#d0d0d0", "#e0e0e0"),
		donut.WithStartAngle(0),
	)
}

// writeChart puts chart alone on a square page with the configured page
// options.
func writeChart(st *state, chart *donut.Chart, path string) error {
	page, err := canvas.New(config.DefaultChartWidth, config.DefaultChartWidth, st.cfg.Page.CanvasOptions()...)
	if err != nil {
		return err
	}
	if err := page.AddGraphic(chart.Graphic); err != nil {
		return err
	}
	return page.Write(path, st.cfg.Page.WriteOptions()...)
}

func writeBasic(st *state, path string) error {
	chart, err := donut.Generate(donut.DefaultStyle(), giants(), "Giant")
	if err != nil {
		return err
	}
	return writeChart(st, chart, path)
}

func writeLabels(st *state, path string) error {
	chart, err := donut.Generate(donut.DefaultStyle(),
		giants(donut.MkWedge(5, "smell", donut.Rotate(true), donut.DX(-0.5))), "Giant")
	if err != nil {
		return err
	}
	return writeChart(st, chart, path)
}

func writeCustom(st *state, path string) error {
	style, err := grayStyle()
	if err != nil {
		return err
	}
	chart, err := style.Generate(giants(donut.MkWedge(5, "smell", donut.Rotate(true), donut.DX(0.5))), "Giants")
	if err != nil {
		return err
	}
	return writeChart(st, chart, path)
}

func writeCanvas(st *state, path string) error {
	style, err := grayStyle()
	if err != nil {
		return err
	}
	chart, err := style.Generate(giants(donut.MkWedge(5, "smell", donut.Rotate(true), donut.DX(0.5))), "Giants")
	if err != nil {
		return err
	}
	page, err := canvas.New(10, 5, st.cfg.Page.CanvasOptions()...)
	if err != nil {
		return err
	}
	if err := page.AddGraphic(chart.Graphic, canvas.Width(5)); err != nil {
		return err
	}
	if err := page.AddGraphic(chart.Graphic, canvas.At(7, 2), canvas.Width(3)); err != nil {
		return err
	}
	return page.Write(path, st.cfg.Page.WriteOptions()...)
}

// writeAnnotate decorates both the chart (a background beneath it) and
// the page (a caption).
func writeAnnotate(st *state, path string) error {
	style, err := donut.NewStyle(donut.WithStartAngle(0))
	if err != nil {
		return err
	}
	chart, err := style.Generate(giants(donut.MkWedge(5, "smell", donut.Rotate(true), donut.DX(0.5))), "Giant")
	if err != nil {
		return err
	}
	chart.Insert(0, &svg.Rect{Width: donut.ChartSize, Height: donut.ChartSize, Fill: "lavender"})

	page, err := canvas.New(10, 5, st.cfg.Page.CanvasOptions()...)
	if err != nil {
		return err
	}
	w, h := page.Width(), page.Height()
	if err := page.AddGraphic(chart.Graphic, canvas.Width(w/2)); err != nil {
		return err
	}
	if err := page.AddGraphic(chart.Graphic, canvas.At(0.7*w, 0.4*h), canvas.Width(0.3*w)); err != nil {
		return err
	}
	scale := page.Scale()
	page.Append(&svg.Text{
		Content:    "Fancy",
		Placement:  infographics.Placement{Position: infographics.Pt(0.6*w*scale, 0.25*h*scale)},
		FontSize:   0.2 * h * scale,
		FontFamily: "sans-serif",
		Fill:       "red",
	})
	return page.Write(path, st.cfg.Page.WriteOptions()...)
}
