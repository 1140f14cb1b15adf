package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/infographics"
	"github.com/gogpu/infographics/canvas"
	"github.com/gogpu/infographics/donut"
	"github.com/gogpu/infographics/internal/config"
)

func newRenderCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every chart in the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			jobs, _ := cmd.Flags().GetInt("jobs")
			if len(st.cfg.Charts) == 0 {
				return errors.New("no charts configured")
			}
			written, err := renderCharts(cmd.Context(), st.cfg, dir, jobs)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
	cmd.Flags().String("dir", "", "directory for relative output paths")
	cmd.Flags().Int("jobs", 0, "maximum charts rendered at once (0: no limit)")
	return cmd
}

// renderCharts renders every configured chart concurrently and returns the
// written paths in configuration order. The first failure cancels charts
// that have not started yet.
func renderCharts(ctx context.Context, cfg *config.Config, dir string, jobs int) ([]string, error) {
	style, err := cfg.Style.NewStyle()
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(cfg.Charts))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, ch := range cfg.Charts {
		path := outputPath(ch, i, dir)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := renderChart(style, cfg.Page, ch, path); err != nil {
				return fmt.Errorf("chart %d (%q): %w", i, ch.Title, err)
			}
			paths[i] = path
			return nil
		})
	}
	err = g.Wait()

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			written = append(written, p)
		}
	}
	return written, err
}

func renderChart(style *donut.Style, page config.PageConfig, ch config.ChartConfig, path string) error {
	data, err := ch.Dataset()
	if err != nil {
		return err
	}
	chart, err := style.Generate(data, ch.Title)
	if err != nil {
		return err
	}
	c, err := canvas.New(ch.Width, ch.Width, page.CanvasOptions()...)
	if err != nil {
		return err
	}
	if err := c.AddGraphic(chart.Graphic, canvas.Width(ch.Width)); err != nil {
		return err
	}
	if err := c.Write(path, page.WriteOptions()...); err != nil {
		return err
	}
	infographics.Logger().Info("rendered chart", "title", ch.Title, "path", path, "wedges", len(data))
	return nil
}

func outputPath(ch config.ChartConfig, i int, dir string) string {
	path := ch.Output
	if path == "" {
		path = fmt.Sprintf("chart-%d.svg", i+1)
	}
	if dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path
}
