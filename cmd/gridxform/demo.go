package main

import (
	"math"

	"github.com/spatialmodel/gridxform/axis"
	"github.com/spatialmodel/gridxform/core"
	"github.com/spatialmodel/gridxform/interp"
	"github.com/spatialmodel/gridxform/reproject"
	"github.com/spatialmodel/gridxform/vertical"
	"github.com/spatialmodel/gridxform/vinterp"
)

// geographic is the PROJ.4-style descriptor for an unprojected lon/lat
// grid, used by both ends of the synthetic demo below.
const geographic = "+proj=longlat +datum=WGS84 +no_defs"

// demoReproject builds a small synthetic lon/lat field -- one undefined
// cell, so a configured fill method has something to patch -- and
// resamples it onto a finer destination grid through core.Regrid. It
// stands in for a real Reader until one is wired up; see internal/netcdf.
func demoReproject(coreCfg core.Config, k2 interp.Kernel2D) (interp.Cube, error) {
	deg := math.Pi / 180
	inX, err := axis.New("lon", axis.Longitude, []float64{-10 * deg, -5 * deg, 0, 5 * deg})
	if err != nil {
		return interp.Cube{}, err
	}
	inY, err := axis.New("lat", axis.Latitude, []float64{30 * deg, 35 * deg, 40 * deg})
	if err != nil {
		return interp.Cube{}, err
	}
	outX, err := axis.New("lon", axis.Longitude, []float64{-8 * deg, -6 * deg, -4 * deg, -2 * deg, 0, 2 * deg})
	if err != nil {
		return interp.Cube{}, err
	}
	outY, err := axis.New("lat", axis.Latitude, []float64{31 * deg, 33 * deg, 35 * deg, 37 * deg})
	if err != nil {
		return interp.Cube{}, err
	}

	in := interp.Cube{Nx: inX.Len(), Ny: inY.Len(), Nz: 1}
	in.Data = make([]float64, in.Nx*in.Ny)
	for i := range in.Data {
		in.Data[i] = float64(i)
	}
	in.Data[0] = math.NaN() // one undefined cell for the configured fill pass to patch

	req := reproject.Request{
		InProj: geographic, InX: inX, InY: inY,
		OutProj: geographic, OutX: outX, OutY: outY,
		Kernel: k2,
	}
	return core.Regrid(coreCfg, req, in)
}

// demoVertical resamples a 4-level sigma-pressure column onto three
// target pressures through core.ConvertVertical. It stands in for a
// real Reader's native-level data until one is wired up.
func demoVertical(coreCfg core.Config, k1 interp.Kernel1D) ([]float64, error) {
	conv := &vertical.SigmaToPressure{
		Ptop:  100,
		Sigma: []float64{0, 0.33, 0.66, 1},
		Ps:    []float64{1000},
		Nx:    1, Ny: 1,
	}
	req := core.VerticalRequest{
		Nt: 1, Nz: 4, Ny: 1, Nx: 1,
		Native: []float64{250, 260, 270, 280},
		Interp: vinterp.Request{
			Converter: conv,
			Kernel:    k1,
			Targets:   []float64{200, 500, 800},
		},
	}
	return core.ConvertVertical(coreCfg, req)
}
