package interp

import "math"

// Kernel2D samples a Cube at a fractional (x,y), writing nz values to out.
type Kernel2D func(c Cube, x, y float64, out []float64)

// Nearest rounds both coordinates to the nearest integer column; if in
// range it copies that column, otherwise it fills out with Undefined.
func Nearest(c Cube, x, y float64, out []float64) {
	rx := int(math.Round(x))
	ry := int(math.Round(y))
	if rx >= 0 && rx < c.Nx && ry >= 0 && ry < c.Ny {
		c.column(rx, ry, out)
		return
	}
	fillUndefined(out)
}

// Bilinear performs standard four-corner weighted sampling, degenerating
// to 1-D linear along one axis when the other coordinate is clamped to the
// boundary, and to Nearest when both are.
func Bilinear(c Cube, x, y float64, out []float64) {
	x0 := int(math.Floor(x))
	x1 := x0 + 1
	xfrac := x - float64(x0)
	y0 := int(math.Floor(y))
	y1 := y0 + 1
	yfrac := y - float64(y0)

	xInRange := 0 <= x0 && x1 < c.Nx
	yInRange := 0 <= y0 && y1 < c.Ny

	switch {
	case xInRange && yInRange:
		for z := 0; z < c.Nz; z++ {
			s00 := c.at(x0, y0, z)
			s01 := c.at(x1, y0, z)
			s10 := c.at(x0, y1, z)
			s11 := c.at(x1, y1, z)
			out[z] = (1-yfrac)*((1-xfrac)*s00+xfrac*s01) + yfrac*((1-xfrac)*s10+xfrac*s11)
		}
	case xInRange && !yInRange:
		ry := int(math.Round(y))
		if ry < 0 || ry >= c.Ny {
			fillUndefined(out)
			return
		}
		for z := 0; z < c.Nz; z++ {
			s00 := c.at(x0, ry, z)
			s01 := c.at(x1, ry, z)
			out[z] = (1-xfrac)*s00 + xfrac*s01
		}
	case !xInRange && yInRange:
		rx := int(math.Round(x))
		if rx < 0 || rx >= c.Nx {
			fillUndefined(out)
			return
		}
		for z := 0; z < c.Nz; z++ {
			s00 := c.at(rx, y0, z)
			s10 := c.at(rx, y1, z)
			out[z] = (1-yfrac)*s00 + yfrac*s10
		}
	default:
		rx := int(math.Round(x))
		ry := int(math.Round(y))
		if rx < 0 || rx >= c.Nx || ry < 0 || ry >= c.Ny {
			fillUndefined(out)
			return
		}
		c.column(rx, ry, out)
	}
}

// bicubicM is the Catmull-Rom convolution matrix for a = -1/2 without its
// overall factor 1/2; Bicubic applies that factor where it uses M.
var bicubicM = [4][4]float64{
	{0, 2, 0, 0},
	{-1, 0, 1, 0},
	{2, -5, 4, -1},
	{-1, 3, -3, 1},
}

// Bicubic performs a 4x4 Catmull-Rom convolution (a = -1/2), requiring a
// full 4x4 neighborhood; outside that neighborhood it returns Undefined.
func Bicubic(c Cube, x, y float64, out []float64) {
	x0 := int(math.Floor(x))
	xfrac := x - float64(x0)
	y0 := int(math.Floor(y))
	yfrac := y - float64(y0)

	if !(1 <= x0 && x0+2 < c.Nx && 1 <= y0 && y0+2 < c.Ny) {
		fillUndefined(out)
		return
	}

	X := [4]float64{1, xfrac, xfrac * xfrac, xfrac * xfrac * xfrac}
	Y := [4]float64{1, yfrac, yfrac * yfrac, yfrac * yfrac * yfrac}

	var XM, MY [4]float64
	for i := 0; i < 4; i++ {
		var sx, sy float64
		for j := 0; j < 4; j++ {
			sx += X[j] * bicubicM[j][i] * 0.5
			sy += Y[j] * bicubicM[j][i] * 0.5
		}
		XM[i] = sx
		MY[i] = sy
	}

	for z := 0; z < c.Nz; z++ {
		var F [4][4]float64
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				F[i][j] = c.at(x0+i-1, y0+j-1, z)
			}
		}
		var XMF [4]float64
		for i := 0; i < 4; i++ {
			var s float64
			for j := 0; j < 4; j++ {
				s += XM[j] * F[j][i]
			}
			XMF[i] = s
		}
		var v float64
		for i := 0; i < 4; i++ {
			v += XMF[i] * MY[i]
		}
		out[z] = v
	}
}
