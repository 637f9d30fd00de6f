// Package core provides the slice-request entry points over the numerical
// components: ConvertVertical, where an Array Looper drives vertical
// conversion and interpolation column by column; Regrid and RegridVector,
// where a horizontal reprojector resamples onto a destination grid and a
// hole filler patches whatever the reprojection left undefined; and Fill.
// The vertical and horizontal entry points are separate: none of them
// calls another. Everything here operates on in-memory slices; reading a
// source dataset and writing a result are the caller's concern (see
// internal/netcdf for a reader-collaborator sketch).
package core

import (
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/gridxform/errs"
	"github.com/spatialmodel/gridxform/fill"
)

// Config bundles the parameters shared by every entry point below: the
// logger each one reports an error through exactly once, at the boundary,
// before returning it, and the hole-filling selection applied after a
// regrid.
type Config struct {
	Log        logrus.FieldLogger
	FillMethod string // "none" (default), "poisson", or "creep"
	Poisson    fill.PoissonConfig
	Creep      fill.CreepConfig
}

func (cfg Config) log() logrus.FieldLogger {
	if cfg.Log != nil {
		return cfg.Log
	}
	return logrus.StandardLogger()
}

func (cfg Config) fail(op string, err error) error {
	if err == nil {
		return nil
	}
	cfg.log().WithError(err).WithField("op", op).Error("gridxform request failed")
	return err
}

// Fill runs the method named by cfg.FillMethod directly over one 2-D
// field, for callers that want hole filling without a full regrid.
func Fill(cfg Config, nx, ny int, field []float64) (int, error) {
	n, err := cfg.fill(nx, ny, field)
	if err != nil {
		return 0, cfg.fail("Fill", err)
	}
	return n, nil
}

// fill applies cfg.FillMethod without logging, so callers that chain it
// into a larger request (Regrid) log only once at their own boundary.
func (cfg Config) fill(nx, ny int, field []float64) (int, error) {
	switch cfg.FillMethod {
	case "", "none":
		return 0, nil
	case "poisson":
		return fill.Poisson(nx, ny, field, cfg.Poisson)
	case "creep":
		return fill.Creep(nx, ny, field, cfg.Creep)
	default:
		return 0, errs.Wrap(errs.ConfigurationError, "core: unknown fill method %q", cfg.FillMethod)
	}
}

func (cfg Config) fillCube(nx, ny, nz int, data []float64) error {
	if cfg.FillMethod == "" || cfg.FillMethod == "none" {
		return nil
	}
	layerLen := nx * ny
	layer := make([]float64, layerLen)
	for z := 0; z < nz; z++ {
		copy(layer, data[z*layerLen:(z+1)*layerLen])
		if _, err := cfg.fill(nx, ny, layer); err != nil {
			return err
		}
		copy(data[z*layerLen:(z+1)*layerLen], layer)
	}
	return nil
}
