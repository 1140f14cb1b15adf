// Package config loads the donut command configuration.
//
// Configuration is read from a YAML file, with DONUT_* environment
// variables overriding file values (for example DONUT_STYLE_HOLE_SIZE=0
// renders pie charts). Loading order:
//  1. Built-in defaults, equal to the donut package defaults
//  2. The YAML file (./donut.yaml, ~/.config/donut/donut.yaml, or an explicit path)
//  3. Environment variables
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/infographics/canvas"
	"github.com/gogpu/infographics/donut"
	"github.com/gogpu/infographics/text"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "DONUT"

// Config is the complete command configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Style   StyleConfig   `mapstructure:"style"   yaml:"style"`
	Page    PageConfig    `mapstructure:"page"    yaml:"page"`
	Charts  []ChartConfig `mapstructure:"charts"  yaml:"charts"`
}

// LoggingConfig selects the log handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// StyleConfig mirrors donut.Style. Sizes are fractions of the chart width;
// the start angle is in degrees, clockwise from +x.
type StyleConfig struct {
	BorderSize  float64  `mapstructure:"border_size"  yaml:"border_size"`
	HoleSize    float64  `mapstructure:"hole_size"    yaml:"hole_size"`
	TitleSize   float64  `mapstructure:"title_size"   yaml:"title_size"`
	LabelSize   float64  `mapstructure:"label_size"   yaml:"label_size"`
	BorderColor string   `mapstructure:"border_color" yaml:"border_color"`
	HoleColor   string   `mapstructure:"hole_color"   yaml:"hole_color"`
	TitleColor  string   `mapstructure:"title_color"  yaml:"title_color"`
	LabelColor  string   `mapstructure:"label_color"  yaml:"label_color"`
	WedgeColors []string `mapstructure:"wedge_colors" yaml:"wedge_colors"`
	StartAngle  float64  `mapstructure:"start_angle"  yaml:"start_angle"`
	FontFamily  string   `mapstructure:"font_family"  yaml:"font_family"`
	FontWeight  string   `mapstructure:"font_weight"  yaml:"font_weight"`

	// Measure enables font metrics for baselines and overflow warnings.
	// FontFile selects the font; empty uses the built-in Go Bold face.
	Measure  bool   `mapstructure:"measure"   yaml:"measure"`
	FontFile string `mapstructure:"font_file" yaml:"font_file"`
}

// PageConfig describes the page charts are written on.
type PageConfig struct {
	Units   string  `mapstructure:"units"   yaml:"units"`
	Scale   float64 `mapstructure:"scale"   yaml:"scale"`
	Doctype bool    `mapstructure:"doctype" yaml:"doctype"`
}

// ChartConfig is one chart to render.
type ChartConfig struct {
	Title  string        `mapstructure:"title"  yaml:"title"`
	Output string        `mapstructure:"output" yaml:"output"`
	Width  float64       `mapstructure:"width"  yaml:"width"` // page units, square page
	Wedges []WedgeConfig `mapstructure:"wedges" yaml:"wedges"`
}

// WedgeConfig is one dataset entry. Options holds per-wedge label options
// (rotate, dx, dy).
type WedgeConfig struct {
	Weight  float64        `mapstructure:"weight"  yaml:"weight"`
	Label   string         `mapstructure:"label"   yaml:"label"`
	Options map[string]any `mapstructure:"options" yaml:"options"`
}

// DefaultChartWidth is the page width of charts that do not set one.
const DefaultChartWidth = 10.0

// Load reads configuration from the default search path. A missing file is
// not an error; defaults and environment variables still apply.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("donut")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".config", "donut"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from the file at path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	for i := range cfg.Charts {
		if cfg.Charts[i].Width == 0 {
			cfg.Charts[i].Width = DefaultChartWidth
		}
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	v.SetDefault("style.border_size", donut.DefaultBorderSize)
	v.SetDefault("style.hole_size", donut.DefaultHoleSize)
	v.SetDefault("style.title_size", donut.DefaultTitleSize)
	v.SetDefault("style.label_size", donut.DefaultLabelSize)
	v.SetDefault("style.border_color", donut.DefaultBorderColor)
	v.SetDefault("style.hole_color", donut.DefaultHoleColor)
	v.SetDefault("style.title_color", donut.DefaultTitleColor)
	v.SetDefault("style.label_color", donut.DefaultLabelColor)
	v.SetDefault("style.wedge_colors", donut.DefaultWedgeColors())
	v.SetDefault("style.start_angle", donut.DefaultStartAngle*180/math.Pi)
	v.SetDefault("style.font_family", donut.DefaultFontFamily)
	v.SetDefault("style.font_weight", donut.DefaultFontWeight)
	v.SetDefault("style.measure", false)
	v.SetDefault("style.font_file", "")

	v.SetDefault("page.units", canvas.DefaultUnits)
	v.SetDefault("page.scale", canvas.DefaultScale)
	v.SetDefault("page.doctype", true)
}

// Options converts the style section into donut style options.
func (s StyleConfig) Options() ([]donut.StyleOption, error) {
	opts := []donut.StyleOption{
		donut.WithBorderSize(s.BorderSize),
		donut.WithHoleSize(s.HoleSize),
		donut.WithTitleSize(s.TitleSize),
		donut.WithLabelSize(s.LabelSize),
		donut.WithBorderColor(s.BorderColor),
		donut.WithHoleColor(s.HoleColor),
		donut.WithTitleColor(s.TitleColor),
		donut.WithLabelColor(s.LabelColor),
		donut.WithWedgeColors(s.WedgeColors...),
		donut.WithStartAngle(s.StartAngle * math.Pi / 180),
		donut.WithFontFamily(s.FontFamily),
		donut.WithFontWeight(s.FontWeight),
	}
	if !s.Measure {
		return opts, nil
	}

	var (
		m   *text.Measurer
		err error
	)
	if s.FontFile == "" {
		m, err = text.DefaultMeasurer()
	} else {
		var data []byte
		data, err = os.ReadFile(s.FontFile)
		if err == nil {
			m, err = text.NewMeasurer(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("config: load font: %w", err)
	}
	return append(opts, donut.WithMeasurer(m)), nil
}

// NewStyle builds the configured chart style.
func (s StyleConfig) NewStyle() (*donut.Style, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	return donut.NewStyle(opts...)
}

// Dataset converts the chart's wedge list, rejecting unknown or
// mistyped wedge options.
func (c ChartConfig) Dataset() ([]donut.Wedge, error) {
	out := make([]donut.Wedge, 0, len(c.Wedges))
	for i, w := range c.Wedges {
		wedge, err := donut.NewWedge(w.Weight, w.Label, w.Options)
		if err != nil {
			return nil, fmt.Errorf("wedge %d (%q): %w", i, w.Label, err)
		}
		out = append(out, wedge)
	}
	return out, nil
}

// CanvasOptions returns the page options for the canvas package.
func (p PageConfig) CanvasOptions() []canvas.Option {
	return []canvas.Option{canvas.WithUnits(p.Units), canvas.WithScale(p.Scale)}
}

// WriteOptions returns the document options for the canvas package.
func (p PageConfig) WriteOptions() []canvas.WriteOption {
	if p.Doctype {
		return nil
	}
	return []canvas.WriteOption{canvas.OmitDoctype()}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
