package core

import (
	"github.com/spatialmodel/gridxform/errs"
	"github.com/spatialmodel/gridxform/looper"
	"github.com/spatialmodel/gridxform/vinterp"
)

// VerticalRequest describes one ConvertVertical call: the native data's
// (t,z,y,x) shape and the interpolation request resampling every column
// onto req.Interp.Targets via req.Interp.Converter's native levels.
type VerticalRequest struct {
	Nt, Nz, Ny, Nx int
	Native         []float64
	Interp         vinterp.Request
}

// ConvertVertical resamples every (x,y,t) column of req.Native from its
// native vertical grid onto req.Interp.Targets. An Array Looper drives the
// 4-D evaluation: it steps the shared (t,y,x) shape once, and at each step
// reports the flat offset of that column in both the native and the
// output buffer (whose z extents differ); the column gather/scatter below
// steps from that offset by one (y,x) plane per level.
func ConvertVertical(cfg Config, req VerticalRequest) ([]float64, error) {
	want := req.Nt * req.Nz * req.Ny * req.Nx
	if len(req.Native) != want {
		return nil, cfg.fail("ConvertVertical", errs.Wrap(errs.ShapeMismatch,
			"core: native data has length %d, want %d for shape (t=%d,z=%d,y=%d,x=%d)",
			len(req.Native), want, req.Nt, req.Nz, req.Ny, req.Nx))
	}

	nTargets := len(req.Interp.Targets)
	planeSize := req.Ny * req.Nx
	shape := looper.Dims{Names: []string{"t", "y", "x"}, Lengths: []int{req.Nt, req.Ny, req.Nx}}
	loop, err := looper.NewLoop(shape, []looper.ArrayRef{
		{Name: "native", Dims: []string{"t", "y", "x"}, Strides: []int{req.Nz * planeSize, req.Nx, 1}},
		{Name: "out", Dims: []string{"t", "y", "x"}, Strides: []int{nTargets * planeSize, req.Nx, 1}},
	})
	if err != nil {
		return nil, cfg.fail("ConvertVertical", err)
	}

	out := make([]float64, req.Nt*nTargets*planeSize)
	column := make([]float64, req.Nz)
	for !loop.Done() {
		idx := loop.Index()
		t, y, x := idx[0], idx[1], idx[2]

		base := loop.Offset("native")
		for z := 0; z < req.Nz; z++ {
			column[z] = req.Native[base+z*planeSize]
		}

		resampled, err := vinterp.Column(req.Interp, x, y, t, column)
		if err != nil {
			return nil, cfg.fail("ConvertVertical", err)
		}

		outBase := loop.Offset("out")
		for k, v := range resampled {
			out[outBase+k*planeSize] = v
		}

		loop.Next()
	}
	return out, nil
}
