package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Measurer computes metrics and advance widths for one font.
type Measurer struct {
	name string

	// metricsFont provides ascent/descent/x-height. sfnt.Font is safe for
	// concurrent use when each call supplies its own Buffer.
	metricsFont *opentype.Font

	// shapingFont is read-only and safe for concurrent use; font.Face is
	// not, so Advance creates a Face per call.
	shapingFont *font.Font

	// shaperPool pools HarfbuzzShaper instances, which hold internal
	// buffers and are not safe for concurrent use.
	shaperPool sync.Pool

	advances *Cache[advanceKey, float64]
}

// NewMeasurer parses TrueType/OpenType font data.
func NewMeasurer(data []byte) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	mf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	m := &Measurer{
		metricsFont: mf,
		shapingFont: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		advances: NewCache[advanceKey, float64](DefaultAdvanceCacheSize),
	}
	if name, err := mf.Name(nil, sfnt.NameIDFamily); err == nil {
		m.name = name
	}
	return m, nil
}

var defaultMeasurer = sync.OnceValues(func() (*Measurer, error) {
	return NewMeasurer(gobold.TTF)
})

// DefaultMeasurer returns a shared measurer for the embedded Go Bold font.
func DefaultMeasurer() (*Measurer, error) {
	return defaultMeasurer()
}

// Name returns the font family name, or "" if the font has none.
func (m *Measurer) Name() string {
	return m.name
}

// Metrics returns the font metrics scaled to size (pixels per em).
func (m *Measurer) Metrics(size float64) (Metrics, error) {
	if !validSize(size) {
		return Metrics{}, ErrInvalidSize
	}
	var buf sfnt.Buffer
	fm, err := m.metricsFont.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: font metrics: %w", err)
	}
	return Metrics{
		Ascent:    fixedToFloat(fm.Ascent),
		Descent:   fixedToFloat(fm.Descent),
		LineGap:   fixedToFloat(fm.Height) - fixedToFloat(fm.Ascent) - fixedToFloat(fm.Descent),
		XHeight:   fixedToFloat(fm.XHeight),
		CapHeight: fixedToFloat(fm.CapHeight),
	}, nil
}

// Advance returns the shaped width of s at size. Results are cached. The text is normalized to
// NFC first so precomposed and decomposed spellings measure the same.
// Invalid sizes and empty strings measure zero.
func (m *Measurer) Advance(s string, size float64) float64 {
	if s == "" || !validSize(size) {
		return 0
	}
	key := advanceKey{text: norm.NFC.String(s), size: size}
	if adv, ok := m.advances.Get(key); ok {
		return adv
	}
	runes := []rune(key.text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.shapingFont),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	m.shaperPool.Put(hb)

	var sum fixed.Int26_6
	for _, g := range output.Glyphs {
		sum += g.Advance
	}
	adv := fixedToFloat(sum)
	m.advances.Set(key, adv)
	return adv
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func validSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 0) && !math.IsNaN(size)
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
