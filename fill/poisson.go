// Package fill implements a 2-D Poisson relaxation fill and a
// creeping-average fill, both operating on a flat row-major (nx,ny) field
// with NaN marking undefined cells.
package fill

import "math"

// PoissonConfig parameterizes Poisson. CheckStride and TailExclude expose
// the convergence-check cadence as a tunable rather than a hardcoded
// constant: by default the fill is checked for convergence every 10th
// iteration, except within the last 5 iterations.
type PoissonConfig struct {
	RelaxCrit   float64 // convergence criterion, as a multiple of the field's mean absolute deviation.
	CorrEff     float64 // correction coefficient applied to undefined inner cells.
	MaxLoop     int
	CheckStride int // default 10 if zero.
	TailExclude int // default 5 if zero; convergence is not checked within this many iterations of MaxLoop.
}

func (c PoissonConfig) withDefaults() PoissonConfig {
	if c.CheckStride <= 0 {
		c.CheckStride = 10
	}
	if c.TailExclude <= 0 {
		c.TailExclude = 5
	}
	return c
}

// Poisson fills NaN cells of field (row-major, length nx*ny) in place by
// relaxation, leaving originally-defined cells untouched, and returns the
// number of cells that were filled.
func Poisson(nx, ny int, field []float64, cfg PoissonConfig) (nChanged int, err error) {
	total := nx * ny
	if total == 0 {
		return 0, nil
	}
	cfg = cfg.withDefaults()

	sum := 0.0
	for _, v := range field {
		if math.IsNaN(v) {
			nChanged++
		} else {
			sum += v
		}
	}
	nUnchanged := total - nChanged
	if nUnchanged == 0 || nChanged == 0 {
		return 0, nil // nothing to do
	}

	wField := make([]float64, total)
	average := sum / float64(nUnchanged)
	stddev := 0.0
	for i, v := range field {
		if math.IsNaN(v) {
			wField[i] = 1
			field[i] = average
		} else {
			stddev += math.Abs(v - average)
			wField[i] = 0
		}
	}
	stddev /= float64(nUnchanged)

	crit := cfg.RelaxCrit * stddev

	nxm1 := nx - 1
	nym1 := ny - 1

	for y := 1; y < nym1; y++ {
		for x := 1; x < nxm1; x++ {
			wField[y*nx+x] *= cfg.CorrEff
		}
	}

	eField := make([]float64, total)
	for n := 0; n < cfg.MaxLoop; n++ {
		for y := 1; y < nym1; y++ {
			for x := 1; x < nxm1; x++ {
				i := y*nx + x
				e := (field[i+1]+field[i-1]+field[i+nx]+field[i-nx])*0.25 - field[i]
				eField[i] = e
				field[i] += e * wField[i]
			}
		}

		if n < cfg.MaxLoop-cfg.TailExclude && n%cfg.CheckStride == 0 {
			crtest := crit * cfg.CorrEff
			converged := true
		rows:
			for y := 1; y < nym1; y++ {
				for x := 1; x < nxm1; x++ {
					i := y*nx + x
					if math.Abs(eField[i]*wField[i]) > crtest {
						converged = false
						break rows
					}
				}
			}
			if converged {
				return nChanged, nil
			}
		}

		for y := 1; y < nym1; y++ {
			field[y*nx+0] += (field[y*nx+1] - field[y*nx+0]) * wField[y*nx+0]
			field[y*nx+nx-1] += (field[y*nx+nx-2] - field[y*nx+nx-1]) * wField[y*nx+nx-1]
		}
		for x := 0; x < nx; x++ {
			field[x] += (field[nx+x] - field[x]) * wField[x]
			field[nym1*nx+x] += (field[(nym1-1)*nx+x] - field[nym1*nx+x]) * wField[nym1*nx+x]
		}
	}

	return nChanged, nil
}
