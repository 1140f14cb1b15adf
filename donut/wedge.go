package donut

import (
	"fmt"
	"math"
	"slices"
)

// Recognized wedge option keys.
const (
	OptionRotate = "rotate"
	OptionDX     = "dx"
	OptionDY     = "dy"
)

type optionSet uint8

const (
	setRotate optionSet = 1 << iota
	setDX
	setDY
)

// WedgeOptions controls how a wedge's label is presented.
type WedgeOptions struct {
	// Rotate aligns the label baseline with the radial through the
	// wedge's mid-angle.
	Rotate bool
	// DX nudges the label along its baseline, in em.
	DX float64
	// DY nudges the label perpendicular to its baseline, toward the bottom
	// of the glyphs, in em.
	DY float64

	set optionSet
}

// Map returns the options as a key/value map holding exactly the keys that
// were supplied when the wedge was built (plus any field set to a
// non-default value directly).
func (o WedgeOptions) Map() map[string]any {
	m := make(map[string]any, 3)
	if o.set&setRotate != 0 || o.Rotate {
		m[OptionRotate] = o.Rotate
	}
	if o.set&setDX != 0 || o.DX != 0 {
		m[OptionDX] = o.DX
	}
	if o.set&setDY != 0 || o.DY != 0 {
		m[OptionDY] = o.DY
	}
	return m
}

// Wedge is one slice of a chart.
type Wedge struct {
	// Weight drives the wedge's angular size relative to the dataset total.
	Weight float64
	// Label is the wedge text; empty means no label.
	Label string
	// Options controls label presentation.
	Options WedgeOptions
}

// WedgeOption sets one presentation option on a wedge.
type WedgeOption func(*WedgeOptions)

// Rotate aligns the label with the wedge's center radial.
func Rotate(on bool) WedgeOption {
	return func(o *WedgeOptions) {
		o.Rotate = on
		o.set |= setRotate
	}
}

// DX nudges the label along its baseline by v em.
func DX(v float64) WedgeOption {
	return func(o *WedgeOptions) {
		o.DX = v
		o.set |= setDX
	}
}

// DY nudges the label toward the bottom of its glyphs by v em.
func DY(v float64) WedgeOption {
	return func(o *WedgeOptions) {
		o.DY = v
		o.set |= setDY
	}
}

// MkWedge builds a wedge from a weight, a label and presentation options.
//
//	donut.MkWedge(25, "fred", donut.Rotate(true))
func MkWedge(weight float64, label string, opts ...WedgeOption) Wedge {
	w := Wedge{Weight: weight, Label: label}
	for _, opt := range opts {
		opt(&w.Options)
	}
	return w
}

// NewWedge builds a wedge from a dynamic option map, as found in
// configuration files. Keys other than "rotate", "dx" and "dy", or values
// of the wrong type, are rejected with an *InvalidOptionError so typos fail
// loudly instead of being ignored.
func NewWedge(weight float64, label string, options map[string]any) (Wedge, error) {
	opts, err := ParseOptions(options)
	if err != nil {
		return Wedge{}, err
	}
	return MkWedge(weight, label, opts...), nil
}

// ParseOptions converts an option map to WedgeOptions setters.
// Keys are checked in sorted order so the reported error is deterministic.
func ParseOptions(options map[string]any) ([]WedgeOption, error) {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	opts := make([]WedgeOption, 0, len(keys))
	for _, k := range keys {
		v := options[k]
		switch k {
		case OptionRotate:
			b, ok := v.(bool)
			if !ok {
				return nil, &InvalidOptionError{Key: k, Value: v, Reason: fmt.Sprintf("want bool, got %T", v)}
			}
			opts = append(opts, Rotate(b))
		case OptionDX, OptionDY:
			f, err := toFloat(v)
			if err != nil {
				return nil, &InvalidOptionError{Key: k, Value: v, Reason: err.Error()}
			}
			if k == OptionDX {
				opts = append(opts, DX(f))
			} else {
				opts = append(opts, DY(f))
			}
		default:
			return nil, &InvalidOptionError{Key: k, Value: v, Reason: "unknown option (want rotate, dx or dy)"}
		}
	}
	return opts, nil
}

func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("want number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("want finite number, got %v", f)
	}
	return f, nil
}
