package core

import (
	"github.com/spatialmodel/gridxform/interp"
	"github.com/spatialmodel/gridxform/reproject"
	"github.com/spatialmodel/gridxform/vector"
)

// Regrid resamples in's horizontal grid per req, then, unless
// cfg.FillMethod is "none", fills any undefined cells the reprojection
// left behind in every z layer of the result.
func Regrid(cfg Config, req reproject.Request, in interp.Cube) (interp.Cube, error) {
	out, err := reproject.Reproject(req, in)
	if err != nil {
		return interp.Cube{}, cfg.fail("Regrid", err)
	}
	if err := cfg.fillCube(out.Nx, out.Ny, out.Nz, out.Data); err != nil {
		return interp.Cube{}, cfg.fail("Regrid", err)
	}
	return out, nil
}

// RegridVector resamples a (u,v) vector field's horizontal grid, rotating
// the result with the forward-projection Jacobian so the vectors stay
// physically consistent in the destination projection, then fills holes
// in both components the same way Regrid does.
func RegridVector(cfg Config, req reproject.Request, method vector.Method, u, v interp.Cube) (interp.Cube, interp.Cube, error) {
	ru, err := reproject.Reproject(req, u)
	if err != nil {
		return interp.Cube{}, interp.Cube{}, cfg.fail("RegridVector", err)
	}
	rv, err := reproject.Reproject(req, v)
	if err != nil {
		return interp.Cube{}, interp.Cube{}, cfg.fail("RegridVector", err)
	}

	matrix, err := vector.JacobianMatrix(req.InProj, req.OutProj, req.OutX.Values, req.OutY.Values)
	if err != nil {
		return interp.Cube{}, interp.Cube{}, cfg.fail("RegridVector", err)
	}
	if err := vector.Rotate(method, matrix, ru.Data, rv.Data, ru.Nx, ru.Ny, ru.Nz); err != nil {
		return interp.Cube{}, interp.Cube{}, cfg.fail("RegridVector", err)
	}

	if err := cfg.fillCube(ru.Nx, ru.Ny, ru.Nz, ru.Data); err != nil {
		return interp.Cube{}, interp.Cube{}, cfg.fail("RegridVector", err)
	}
	if err := cfg.fillCube(rv.Nx, rv.Ny, rv.Nz, rv.Data); err != nil {
		return interp.Cube{}, interp.Cube{}, cfg.fail("RegridVector", err)
	}
	return ru, rv, nil
}
