// Package reproject orchestrates axis search, projection, and a 2-D
// kernel to resample a 3-D (x,y,z) slab from one grid onto another.
package reproject

import (
	"github.com/spatialmodel/gridxform/axis"
	"github.com/spatialmodel/gridxform/errs"
	"github.com/spatialmodel/gridxform/interp"
	"github.com/spatialmodel/gridxform/projection"
)

// Request describes the two grids and the resampling kernel for one
// reprojection. InX/InY and OutX/OutY are the axis coordinates in the
// units native to their own projection (radians for geographic axes, per
// package projection's convention).
type Request struct {
	InProj     string
	InX, InY   *axis.Axis
	OutProj    string
	OutX, OutY *axis.Axis
	Kernel     interp.Kernel2D
}

// Reproject resamples in (shape in.Nx == len(req.InX.Values), in.Ny ==
// len(req.InY.Values)) onto the output grid, returning a Cube of shape
// (len(req.OutX.Values), len(req.OutY.Values), in.Nz).
//
// The output axes are projected into the input projection once, then
// for every output cell the projected point is converted to a
// fractional input-index position by searching the input axes, and
// req.Kernel samples the input cube at that position for every z layer.
func Reproject(req Request, in interp.Cube) (interp.Cube, error) {
	if in.Nx != req.InX.Len() || in.Ny != req.InY.Len() {
		return interp.Cube{}, errs.Wrap(errs.ShapeMismatch,
			"reproject: input cube is %dx%d, axes declare %dx%d",
			in.Nx, in.Ny, req.InX.Len(), req.InY.Len())
	}

	ox, oy := req.OutX.Len(), req.OutY.Len()
	px, py, err := projection.ProjectAxes(req.OutProj, req.InProj, req.OutX.Values, req.OutY.Values)
	if err != nil {
		return interp.Cube{}, err
	}

	out := interp.Cube{Data: make([]float64, ox*oy*in.Nz), Nx: ox, Ny: oy, Nz: in.Nz}
	layer := make([]float64, in.Nz)
	for y := 0; y < oy; y++ {
		for x := 0; x < ox; x++ {
			pos := y*ox + x
			fx := req.InX.Search(px[pos])
			fy := req.InY.Search(py[pos])
			req.Kernel(in, fx, fy, layer)
			for z := 0; z < in.Nz; z++ {
				out.Data[z*ox*oy+y*ox+x] = layer[z]
			}
		}
	}
	return out, nil
}
