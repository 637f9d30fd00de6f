package main

import (
	"github.com/spatialmodel/gridxform/errs"
	"github.com/spatialmodel/gridxform/interp"
)

func kernel2D(name string) (interp.Kernel2D, error) {
	switch name {
	case "nearest":
		return interp.Nearest, nil
	case "bilinear":
		return interp.Bilinear, nil
	case "bicubic":
		return interp.Bicubic, nil
	default:
		return nil, errs.Wrap(errs.ConfigurationError, "gridxform: unknown kernel2d %q", name)
	}
}

func kernel1D(name string) (interp.Kernel1D, error) {
	switch name {
	case "linear":
		return interp.Linear, nil
	case "log":
		return interp.Log, nil
	case "loglog":
		return interp.LogLog, nil
	default:
		return nil, errs.Wrap(errs.ConfigurationError, "gridxform: unknown kernel1d %q", name)
	}
}
