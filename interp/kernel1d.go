package interp

import (
	"math"

	"github.com/spatialmodel/gridxform/errs"
)

// Kernel1D fills out from two known layers A, B at coordinates a, b,
// evaluated at target coordinate x. For a == b the output equals A.
type Kernel1D func(a, b, x float64, layerA, layerB, out []float64) error

// Linear performs o(x) = A + (x-a)/(b-a) * (B-A).
func Linear(a, b, x float64, layerA, layerB, out []float64) error {
	f := 0.0
	if a != b {
		f = (x - a) / (b - a)
	}
	for i := range out {
		out[i] = layerA[i] + f*(layerB[i]-layerA[i])
	}
	return nil
}

// Log performs interpolation linear in log-coordinate: o(x) = Linear
// evaluated at log(a), log(b), log(x). Requires a, b, x strictly
// positive.
func Log(a, b, x float64, layerA, layerB, out []float64) error {
	if a <= 0 || b <= 0 || x <= 0 {
		return errs.Wrap(errs.DomainError, "interp: log kernel requires positive coordinates, got a=%v b=%v x=%v", a, b, x)
	}
	return Linear(math.Log(a), math.Log(b), math.Log(x), layerA, layerB, out)
}

// LogLog performs interpolation linear in log(coordinate + e), keeping
// the log argument positive even for small coordinates. Requires a, b, x
// strictly positive.
func LogLog(a, b, x float64, layerA, layerB, out []float64) error {
	if a <= 0 || b <= 0 || x <= 0 {
		return errs.Wrap(errs.DomainError, "interp: log-log kernel requires positive coordinates, got a=%v b=%v x=%v", a, b, x)
	}
	return Log(a+math.E, b+math.E, x+math.E, layerA, layerB, out)
}
