// Package text measures chart labels.
//
// SVG leaves glyph layout to the renderer, so the generators never need
// font data to produce a valid chart. A Measurer is optional: when a style
// carries one, labels are vertically centered with an explicit baseline
// shift instead of dominant-baseline (which librsvg ignores), and labels
// wider than their ring are reported.
//
// Metrics come from golang.org/x/image/font/opentype; advance widths come
// from HarfBuzz shaping via go-text/typesetting, so kerning and ligatures
// are accounted for. The default measurer uses the embedded Go Bold font,
// which approximates the bold sans-serif the charts request.
//
// Advance widths are cached per measurer. A Measurer is safe for
// concurrent use.
package text
