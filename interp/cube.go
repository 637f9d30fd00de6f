// Package interp implements 2-D nearest/bilinear/bicubic sampling of a
// 3-D (x,y,z) cube at a fractional (x,y), and 1-D vertical
// linear/log/log-log kernels.
package interp

import "math"

// Undefined is the undefined-sample sentinel: IEEE NaN.
var Undefined = math.NaN()

// Cube is a read-only view of a flattened (nx,ny,nz) array, z slowest
// varying and x fastest varying: index = z*nx*ny + y*nx + x.
type Cube struct {
	Data       []float64
	Nx, Ny, Nz int
}

func (c Cube) at(x, y, z int) float64 {
	return c.Data[z*c.Nx*c.Ny+y*c.Nx+x]
}

// column copies the nz samples at integer column (x,y) into out.
func (c Cube) column(x, y int, out []float64) {
	for z := 0; z < c.Nz; z++ {
		out[z] = c.at(x, y, z)
	}
}

func fillUndefined(out []float64) {
	for i := range out {
		out[i] = Undefined
	}
}
