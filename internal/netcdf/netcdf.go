// Package netcdf sketches the reader collaborator the core calls back
// into for field materialization. It is not part of the tested core; it
// exists to show the shape of a real Reader without pulling file I/O
// into the numeric packages.
package netcdf

import (
	"github.com/ctessum/cdf"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/gridxform/errs"
	"github.com/spatialmodel/gridxform/sentinel"
)

// Reader materializes named variables out of an open netCDF file,
// scrubbing a declared legacy fill value to NaN on the way in.
type Reader struct {
	File *cdf.File
	Log  logrus.FieldLogger
}

// ReadVariable reads the full contents of varName, in its declared
// shape, and converts any "_FillValue"-equivalent sentinel the caller
// supplies to NaN.
func (r *Reader) ReadVariable(varName string, fillValue float64) ([]float64, []int, error) {
	dims := r.File.Header.Lengths(varName)
	if len(dims) == 0 {
		return nil, nil, errs.Wrap(errs.MissingInput, "netcdf: variable %q not found", varName)
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	start, end := make([]int, len(dims)), make([]int, len(dims))
	for i, d := range dims {
		end[i] = d
	}
	rdr := r.File.Reader(varName, start, end)
	buf := rdr.Zero(n)
	if _, err := rdr.Read(buf); err != nil {
		return nil, nil, errs.Wrap(errs.Internal, "netcdf: reading variable %q: %v", varName, err)
	}

	data := make([]float64, n)
	switch v := buf.(type) {
	case []float32:
		for i, x := range v {
			data[i] = float64(x)
		}
	case []float64:
		copy(data, v)
	default:
		return nil, nil, errs.Wrap(errs.Internal, "netcdf: variable %q has unsupported type %T", varName, buf)
	}

	n2 := sentinel.ToNaN(data, fillValue)
	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{"variable": varName, "scrubbed": n2}).Debug("read netcdf variable")
	}
	return data, dims, nil
}

// ReadAxis reads a 1-D coordinate variable, erroring if it isn't 1-D.
func (r *Reader) ReadAxis(name string) ([]float64, error) {
	data, dims, err := r.ReadVariable(name, nanSentinel)
	if err != nil {
		return nil, err
	}
	if len(dims) != 1 {
		return nil, errs.Wrap(errs.ConfigurationError, "netcdf: axis %q is not 1-D (shape %v)", name, dims)
	}
	return data, nil
}

const nanSentinel = -9999999.0 // placeholder fill value for coordinate variables, which are rarely masked.
