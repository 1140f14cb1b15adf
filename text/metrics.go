package text

// Metrics holds font metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// MiddleShift returns how far to move the alphabetic baseline down from an
// anchor so the text sits where dominant-baseline:middle would put it:
// half the x-height. Fonts without an x-height fall back to centering the
// ascent/descent box.
func (m Metrics) MiddleShift() float64 {
	if m.XHeight > 0 {
		return m.XHeight / 2
	}
	return (m.Ascent - m.Descent) / 2
}
