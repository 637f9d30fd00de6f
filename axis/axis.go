// Package axis implements a strictly monotone 1-D coordinate axis and
// fractional-index lookup on it, including longitude wrap and linear
// extrapolation.
package axis

import (
	"math"

	"github.com/spatialmodel/gridxform/errs"
)

// Tag names the geophysical role of an Axis.
type Tag int

const (
	// Generic is an axis with no special geophysical role.
	Generic Tag = iota
	Longitude
	Latitude
	ProjectionX
	ProjectionY
	Vertical
	Time
)

// Axis is a 1-D sequence of strictly monotone coordinates tagged with a
// role. Longitude axes are interpreted modulo 2*pi.
type Axis struct {
	Name   string
	Tag    Tag
	Values []float64
}

// New constructs an Axis, validating strict monotonicity.
func New(name string, tag Tag, values []float64) (*Axis, error) {
	if len(values) < 1 {
		return nil, errs.Wrap(errs.ConfigurationError, "axis %q: must have at least one value", name)
	}
	if len(values) > 1 {
		asc := values[1] > values[0]
		for i := 1; i < len(values); i++ {
			if asc && values[i] <= values[i-1] {
				return nil, errs.Wrap(errs.ConfigurationError, "axis %q: not strictly monotone increasing at index %d", name, i)
			}
			if !asc && values[i] >= values[i-1] {
				return nil, errs.Wrap(errs.ConfigurationError, "axis %q: not strictly monotone decreasing at index %d", name, i)
			}
		}
	}
	return &Axis{Name: name, Tag: tag, Values: values}, nil
}

// Len returns the number of values on the axis.
func (a *Axis) Len() int { return len(a.Values) }

// Ascending reports whether the axis increases from index 0.
func (a *Axis) Ascending() bool {
	return len(a.Values) < 2 || a.Values[1] > a.Values[0]
}

// normalizeLongitude folds q into the axis's own 2*pi window, choosing
// [-pi,pi] or [0,2*pi] based on the sign of the axis endpoints.
func (a *Axis) normalizeLongitude(q float64) float64 {
	const twoPi = 2 * math.Pi
	negWindow := a.Values[0] < 0 || a.Values[len(a.Values)-1] < 0
	if negWindow {
		for q > math.Pi {
			q -= twoPi
		}
		for q < -math.Pi {
			q += twoPi
		}
	} else {
		for q < 0 {
			q += twoPi
		}
		for q >= twoPi {
			q -= twoPi
		}
	}
	return q
}
