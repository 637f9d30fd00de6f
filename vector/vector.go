// Package vector builds a per-output-cell 2x2 Jacobian of the forward
// projection and applies it to (u,v) vector fields so they stay
// physically consistent after reprojection.
package vector

import (
	"math"

	"github.com/spatialmodel/gridxform/errs"
	"github.com/spatialmodel/gridxform/projection"
)

// Method selects how Rotate treats vector magnitude after rotation.
type Method int

const (
	// PreserveDirection applies the rotation matrix only: u' = M*u.
	PreserveDirection Method = iota
	// PreserveMagnitude applies the rotation matrix, then renormalizes the
	// result to the original vector's length.
	PreserveMagnitude
)

// deltaFraction is the fraction of inter-cell spacing used for the finite
// difference step.
const deltaFraction = 1e-3

// JacobianMatrix computes, for every intersection of the output axes outX
// (length ox) and outY (length oy), the 2x2 Jacobian of the forward
// projection from src to dst, evaluated by perturbing the corresponding
// src-projection location by deltaFraction of the inter-cell spacing and
// re-projecting. The result is a flat buffer of length 4*ox*oy; cell (x,y)
// occupies matrix[(y*ox+x)*4 : (y*ox+x)*4+4] as [dX/dx, dY/dx, dX/dy, dY/dy]
// (dst coordinate over src perturbation), which Rotate applies as
// u' = m[0]*u + m[2]*v, v' = m[1]*u + m[3]*v.
func JacobianMatrix(src, dst string, outX, outY []float64) ([]float64, error) {
	ox, oy := len(outX), len(outY)
	if ox == 0 || oy == 0 {
		return nil, errs.Wrap(errs.ConfigurationError, "vector: empty output axis (ox=%d, oy=%d)", ox, oy)
	}

	// Positions of every output grid intersection, expressed in the src
	// projection.
	inX, inY, err := projection.ProjectAxes(dst, src, outX, outY)
	if err != nil {
		return nil, err
	}

	// The same delta formula, derived from the x-axis spacing in the
	// src-projected grid, is used for both the x- and y-perturbation.
	dx := stepDelta(inX, ox, oy)

	matrix := make([]float64, 4*ox*oy)

	// Perturb along the src x axis, re-project back to dst, and take the
	// finite difference against the unperturbed output axis values.
	perturbedX := make([]float64, ox*oy)
	perturbedY := make([]float64, ox*oy)
	copy(perturbedX, inX)
	for i := range perturbedX {
		perturbedX[i] += dx
	}
	copy(perturbedY, inY)
	if err := projection.ProjectPoints(src, dst, perturbedX, perturbedY); err != nil {
		return nil, err
	}
	invDX := 1 / dx
	for y := 0; y < oy; y++ {
		for x := 0; x < ox; x++ {
			pos := y*ox + x
			matrix[pos*4+0] = (perturbedX[pos] - outX[x]) * invDX
			matrix[pos*4+1] = (perturbedY[pos] - outY[y]) * invDX
		}
	}

	// Perturb along the src y axis.
	dy2 := stepDelta(inX, ox, oy)
	copy(perturbedX, inX)
	copy(perturbedY, inY)
	for i := range perturbedY {
		perturbedY[i] += dy2
	}
	if err := projection.ProjectPoints(src, dst, perturbedX, perturbedY); err != nil {
		return nil, err
	}
	invDY := 1 / dy2
	for y := 0; y < oy; y++ {
		for x := 0; x < ox; x++ {
			pos := y*ox + x
			matrix[pos*4+2] = (perturbedX[pos] - outX[x]) * invDY
			matrix[pos*4+3] = (perturbedY[pos] - outY[y]) * invDY
		}
	}

	return matrix, nil
}

// stepDelta derives the finite-difference step, falling back to the
// available neighbor direction on degenerate (single row/column) grids.
func stepDelta(inX []float64, ox, oy int) float64 {
	switch {
	case ox > 1 && oy > 1:
		return deltaFraction * (inX[1*ox+1] - inX[0])
	case ox > 1:
		return deltaFraction * (inX[0*ox+1] - inX[0])
	case oy > 1:
		return deltaFraction * (inX[1*ox+0] - inX[0])
	default:
		return deltaFraction
	}
}

// Rotate applies the per-cell matrix to the (u,v) fields across oz
// vertical layers in place. Each layer uses the same per-(x,y) matrix;
// vertical layers are processed independently.
func Rotate(method Method, matrix []float64, u, v []float64, ox, oy, oz int) error {
	layerSize := ox * oy
	if len(u) != layerSize*oz || len(v) != layerSize*oz {
		return errs.Wrap(errs.ShapeMismatch, "vector: u/v length does not match ox*oy*oz (%d)", layerSize*oz)
	}
	if len(matrix) != 4*layerSize {
		return errs.Wrap(errs.ShapeMismatch, "vector: matrix length does not match 4*ox*oy (%d)", 4*layerSize)
	}

	for z := 0; z < oz; z++ {
		base := z * layerSize
		for i := 0; i < layerSize; i++ {
			m := matrix[4*i : 4*i+4]
			uo, vo := u[base+i], v[base+i]
			un := uo*m[0] + vo*m[2]
			vn := uo*m[1] + vo*m[3]
			if method == PreserveMagnitude {
				origNorm := uo*uo + vo*vo
				newNorm := un*un + vn*vn
				if newNorm > 0 {
					scale := math.Sqrt(origNorm / newNorm)
					un *= scale
					vn *= scale
				}
			}
			u[base+i] = un
			v[base+i] = vn
		}
	}
	return nil
}
