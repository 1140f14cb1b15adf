package donut

import (
	"errors"
	"fmt"
)

// Sentinel errors for donut package. Every typed error below unwraps to
// one of these, so callers can test with errors.Is.
var (
	// ErrConfiguration is returned for invalid style parameters.
	ErrConfiguration = errors.New("donut: invalid style configuration")

	// ErrDegenerateDataset is returned when a dataset's total weight is
	// zero (or not finite), leaving angular fractions undefined.
	ErrDegenerateDataset = errors.New("donut: degenerate dataset")

	// ErrInvalidOption is returned for unrecognized or mistyped wedge
	// presentation options.
	ErrInvalidOption = errors.New("donut: invalid wedge option")
)

// ConfigurationError reports an invalid Style parameter.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("donut: invalid style %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// DegenerateDatasetError reports a dataset whose weights cannot be turned
// into angles.
type DegenerateDatasetError struct {
	Wedges int
	Total  float64
}

func (e *DegenerateDatasetError) Error() string {
	return fmt.Sprintf("donut: degenerate dataset: total weight %v across %d wedges", e.Total, e.Wedges)
}

// Unwrap returns ErrDegenerateDataset.
func (e *DegenerateDatasetError) Unwrap() error { return ErrDegenerateDataset }

// InvalidOptionError reports a wedge option that is unknown or has the
// wrong value type.
type InvalidOptionError struct {
	Key    string
	Value  any
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("donut: invalid wedge option %q=%v: %s", e.Key, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidOption.
func (e *InvalidOptionError) Unwrap() error { return ErrInvalidOption }
