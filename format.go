package infographics

import (
	"math"
	"strconv"
)

// numberPrecision is the number of fractional digits kept in serialized
// coordinates. Charts are laid out in a 1000-unit space, so a thousandth
// of a unit is far below anything a renderer can resolve.
const numberPrecision = 3

// FormatNumber formats v for SVG attributes and path data: at most three
// fractional digits, trailing zeros trimmed, and no negative zero.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', numberPrecision, 64)
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	s = s[:i]
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
