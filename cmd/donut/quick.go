package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/infographics/donut"
	"github.com/gogpu/infographics/internal/config"
)

func newQuickCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick weight:label[:rotate] ...",
		Short: "Render one chart from command-line wedges",
		Example: `  donut quick -t Giant 25:Fee 25:Fi 25:Fo 25:Fum
  donut quick -o smell.svg -w 5 25:Fee 5:smell:rotate`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			output, _ := cmd.Flags().GetString("output")
			width, _ := cmd.Flags().GetFloat64("width")

			ch := config.ChartConfig{Title: title, Output: output, Width: width}
			for _, arg := range args {
				w, err := parseWedgeArg(arg)
				if err != nil {
					return err
				}
				ch.Wedges = append(ch.Wedges, w)
			}

			style, err := st.cfg.Style.NewStyle()
			if err != nil {
				return err
			}
			if err := renderChart(style, st.cfg.Page, ch, output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringP("title", "t", "", "chart title")
	cmd.Flags().StringP("output", "o", "chart.svg", "output file")
	cmd.Flags().Float64P("width", "w", config.DefaultChartWidth, "page width in page units")
	return cmd
}

// parseWedgeArg parses "weight:label" with an optional ":rotate" suffix.
// The label may be empty ("5:").
func parseWedgeArg(arg string) (config.WedgeConfig, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return config.WedgeConfig{}, fmt.Errorf("wedge %q: want weight:label[:rotate]", arg)
	}
	weight, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return config.WedgeConfig{}, fmt.Errorf("wedge %q: weight: %w", arg, err)
	}
	w := config.WedgeConfig{Weight: weight, Label: parts[1]}
	if len(parts) == 3 {
		if parts[2] != donut.OptionRotate {
			return config.WedgeConfig{}, fmt.Errorf("wedge %q: unknown flag %q (want rotate)", arg, parts[2])
		}
		w.Options = map[string]any{donut.OptionRotate: true}
	}
	return w, nil
}
