package vertical

import "math"

// Identity returns the native axis unchanged as the physical axis: the
// native vertical coordinate already is, e.g., pressure or altitude.
type Identity struct {
	Levels_ []float64
}

func (c *Identity) Levels(x, y, t int) ([]float64, error) { return c.Levels_, nil }

func (c *Identity) IsValid(vVal float64, x, y, t int) bool { return !math.IsNaN(vVal) }

// Identity4D is Identity for a native coordinate that is itself
// time-dependent, e.g. pressure on hybrid levels already precomputed
// elsewhere and supplied as a raw (t,z,y,x) field.
type Identity4D struct {
	Pressure   []float64 // shape (nt,nz,ny,nx)
	Nx, Ny, Nz int
}

func (c *Identity4D) Levels(x, y, t int) ([]float64, error) {
	h := make([]float64, c.Nz)
	for z := 0; z < c.Nz; z++ {
		h[z] = c.Pressure[columnIndex4(x, y, z, t, c.Nx, c.Ny, c.Nz)]
	}
	return h, nil
}

func (c *Identity4D) IsValid(vVal float64, x, y, t int) bool { return !math.IsNaN(vVal) }
