package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/infographics/donut"
)

const sample = `
logging:
  level: debug
  format: json
style:
  hole_size: 0.4
  wedge_colors: ["#909090", "#a0a0a0"]
  start_angle: 0
page:
  units: mm
  scale: 10
  doctype: false
charts:
  - title: Giant
    output: giant.svg
    wedges:
      - {weight: 25, label: Fee}
      - {weight: 25, label: Fi, options: {rotate: true}}
      - {weight: 25, label: Fo, options: {dx: 0.5, dy: -1}}
      - {weight: 25, label: Fum}
  - title: Smell
    output: smell.svg
    width: 4
    wedges:
      - {weight: 5, label: smell}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "donut.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, donut.DefaultHoleSize, cfg.Style.HoleSize)
	assert.Equal(t, donut.DefaultWedgeColors(), cfg.Style.WedgeColors)
	assert.InDelta(t, -90, cfg.Style.StartAngle, 1e-12)
	assert.Equal(t, "cm", cfg.Page.Units)
	assert.Equal(t, 100.0, cfg.Page.Scale)
	assert.True(t, cfg.Page.Doctype)
	assert.Empty(t, cfg.Charts)

	style, err := cfg.Style.NewStyle()
	require.NoError(t, err)
	def := donut.DefaultStyle()
	assert.Equal(t, def.HoleSize(), style.HoleSize())
	assert.Equal(t, def.WedgeColors(), style.WedgeColors())
	assert.InDelta(t, def.StartAngle(), style.StartAngle(), 1e-12)
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 0.4, cfg.Style.HoleSize)
	assert.Equal(t, donut.DefaultBorderSize, cfg.Style.BorderSize, "unset keys keep defaults")
	assert.Equal(t, []string{"#909090", "#a0a0a0"}, cfg.Style.WedgeColors)
	assert.False(t, cfg.Page.Doctype)
	assert.Len(t, cfg.Page.WriteOptions(), 1)
	assert.Len(t, cfg.Page.CanvasOptions(), 2)

	require.Len(t, cfg.Charts, 2)
	assert.Equal(t, DefaultChartWidth, cfg.Charts[0].Width)
	assert.Equal(t, 4.0, cfg.Charts[1].Width)

	data, err := cfg.Charts[0].Dataset()
	require.NoError(t, err)
	require.Len(t, data, 4)
	assert.Equal(t, "Fee", data[0].Label)
	assert.Equal(t, 25.0, data[0].Weight)
	assert.True(t, data[1].Options.Rotate)
	assert.Equal(t, 0.5, data[2].Options.DX)
	assert.Equal(t, -1.0, data[2].Options.DY)

	style, err := cfg.Style.NewStyle()
	require.NoError(t, err)
	assert.Equal(t, 0.0, style.StartAngle())
}

func TestLoadFromFileEnvOverride(t *testing.T) {
	t.Setenv("DONUT_STYLE_HOLE_SIZE", "0")
	t.Setenv("DONUT_LOGGING_LEVEL", "error")

	cfg, err := LoadFromFile(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Style.HoleSize)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDatasetRejectsBadOptions(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, `
charts:
  - title: typo
    wedges:
      - {weight: 1, label: ok}
      - {weight: 1, label: bad, options: {rotat: true}}
`))
	require.NoError(t, err)

	_, err = cfg.Charts[0].Dataset()
	require.Error(t, err)
	assert.ErrorIs(t, err, donut.ErrInvalidOption)
	assert.Contains(t, err.Error(), "wedge 1")
}

func TestStyleValidation(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, "style:\n  hole_size: 1.5\n"))
	require.NoError(t, err)

	_, err = cfg.Style.NewStyle()
	assert.ErrorIs(t, err, donut.ErrConfiguration)
}

func TestStyleMeasure(t *testing.T) {
	s := StyleConfig{
		HoleSize:    0.3,
		WedgeColors: []string{"red"},
		StartAngle:  90,
		Measure:     true,
	}
	style, err := s.NewStyle()
	require.NoError(t, err)
	assert.NotNil(t, style.Measurer())
	assert.InDelta(t, math.Pi/2, style.StartAngle(), 1e-12)

	s.FontFile = writeConfig(t, "not a font")
	_, err = s.NewStyle()
	assert.Error(t, err)
}
