package fill

import "math"

// CreepConfig parameterizes Creep.
type CreepConfig struct {
	Repeat    int     // max number of times a cell may be updated; default 1 if zero.
	SetWeight float64 // weight assigned to originally-defined cells, default 1 if zero.
}

func (c CreepConfig) withDefaults() CreepConfig {
	if c.Repeat <= 0 {
		c.Repeat = 1
	}
	if c.SetWeight <= 0 {
		c.SetWeight = 1
	}
	return c
}

// Creep fills NaN cells of field (row-major, length nx*ny) in place with a
// weighted average of their defined 4-neighbours, repeating until no
// undefined cell changes or until the number of passes equals the
// original hole count, whichever comes first. It returns the number of
// cells that were filled. A filled cell becomes implicitly defined, with
// weight 1, and may itself be averaged into later passes; originally
// defined cells keep cfg.SetWeight throughout and are never altered.
func Creep(nx, ny int, field []float64, cfg CreepConfig) (nChanged int, err error) {
	total := nx * ny
	if total == 0 {
		return 0, nil
	}
	cfg = cfg.withDefaults()

	weight := make([]float64, total)
	nHoles := 0
	for i, v := range field {
		if math.IsNaN(v) {
			nHoles++
		} else {
			weight[i] = cfg.SetWeight
		}
	}
	if nHoles == 0 {
		return 0, nil
	}

	maxPasses := nHoles
	remaining := nHoles
	count := make([]int, total)

	for pass := 0; pass < maxPasses && remaining > 0; pass++ {
		changedThisPass := false
		next := make([]float64, total)
		copy(next, field)
		nextWeight := make([]float64, total)
		copy(nextWeight, weight)

		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				i := y*nx + x
				if !math.IsNaN(field[i]) {
					continue
				}
				if count[i] >= cfg.Repeat {
					continue
				}
				sum := 0.0
				wsum := 0.0
				if x > 0 && !math.IsNaN(field[i-1]) {
					sum += weight[i-1] * field[i-1]
					wsum += weight[i-1]
				}
				if x < nx-1 && !math.IsNaN(field[i+1]) {
					sum += weight[i+1] * field[i+1]
					wsum += weight[i+1]
				}
				if y > 0 && !math.IsNaN(field[i-nx]) {
					sum += weight[i-nx] * field[i-nx]
					wsum += weight[i-nx]
				}
				if y < ny-1 && !math.IsNaN(field[i+nx]) {
					sum += weight[i+nx] * field[i+nx]
					wsum += weight[i+nx]
				}
				if wsum == 0 {
					continue
				}
				next[i] = sum / wsum
				nextWeight[i] = 1
				count[i]++
				changedThisPass = true
				nChanged++ // field[i] was NaN and becomes defined exactly once
				remaining--
			}
		}

		copy(field, next)
		weight = nextWeight

		if !changedThisPass {
			break
		}
	}

	return nChanged, nil
}
