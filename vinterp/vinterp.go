// Package vinterp resamples a scalar field from a column's native
// vertical levels onto a caller-supplied list of target physical levels,
// using a vertical converter to learn the native levels' physical
// coordinates and a 1-D kernel to interpolate between the bracketing
// pair.
package vinterp

import (
	"math"

	"github.com/spatialmodel/gridxform/axis"
	"github.com/spatialmodel/gridxform/errs"
	"github.com/spatialmodel/gridxform/interp"
	"github.com/spatialmodel/gridxform/vertical"
)

// Request bundles the fixed parameters of a vertical resample: the
// converter giving a column's native levels, the kernel to interpolate
// between bracketing levels, and the target physical levels.
type Request struct {
	Converter vertical.Converter
	Kernel    interp.Kernel1D
	Targets   []float64
}

// Column resamples one column's native-level data onto req.Targets,
// returning a slice of length len(req.Targets). Target levels rejected
// by the converter's IsValid predicate, or that fall entirely outside
// the column's native range, are set to interp.Undefined.
func Column(req Request, x, y, t int, native []float64) ([]float64, error) {
	levels, err := req.Converter.Levels(x, y, t)
	if err != nil {
		return nil, err
	}
	if len(levels) != len(native) {
		return nil, errs.Wrap(errs.ShapeMismatch,
			"vinterp: converter produced %d levels, native data has %d", len(levels), len(native))
	}

	out := make([]float64, len(req.Targets))
	if len(levels) == 0 {
		for i := range out {
			out[i] = interp.Undefined
		}
		return out, nil
	}

	ax, err := axis.New("native-physical", axis.Vertical, levels)
	if err != nil {
		return nil, err
	}
	n := ax.Len()

	for k, target := range req.Targets {
		if !req.Converter.IsValid(target, x, y, t) {
			out[k] = interp.Undefined
			continue
		}
		if n == 1 {
			out[k] = native[0]
			continue
		}

		p := ax.Search(target)
		if p < 0 || p > float64(n-1) {
			out[k] = interp.Undefined
			continue
		}
		a0 := int(math.Floor(p))
		if a0 < 0 {
			a0 = 0
		} else if a0 > n-2 {
			a0 = n - 2
		}
		a1 := a0 + 1

		dst := make([]float64, 1)
		if err := req.Kernel(levels[a0], levels[a1], target, native[a0:a0+1], native[a1:a1+1], dst); err != nil {
			return nil, err
		}
		out[k] = dst[0]
	}
	return out, nil
}
