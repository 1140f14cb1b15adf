// Command donut renders donut and pie charts as SVG documents.
//
// Charts are described in a YAML configuration file (see the internal
// config package) or given on the command line:
//
//	donut render --config charts.yaml
//	donut quick -t Giant -o giant.svg 25:Fee 25:Fi 25:Fo 25:Fum 5:smell:rotate
//	donut demo --dir out/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/infographics"
	"github.com/gogpu/infographics/internal/config"
)

// Build-time variables (set via -ldflags).
var (
	commit = "unknown"
	date   = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// state is shared by the subcommands of one invocation.
type state struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:           "donut",
		Short:         "Render donut and pie charts as SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			configFile, _ := cmd.Flags().GetString("config")
			if configFile != "" {
				st.cfg, err = config.LoadFromFile(configFile)
			} else {
				st.cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			level, _ := cmd.Flags().GetString("log-level")
			if level != "" {
				st.cfg.Logging.Level = level
			}
			logger, err := newLogger(st.cfg.Logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			infographics.SetLogger(logger)
			return nil
		},
	}
	root.PersistentFlags().String("config", "", "config file path (default: ./donut.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newVersionCmd(),
		newRenderCmd(st),
		newQuickCmd(st),
		newDemoCmd(st),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "donut %s\n", infographics.Version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}

// newLogger builds the library logger from the logging section.
func newLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", cfg.Format)
	}
}
