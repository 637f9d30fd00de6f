// Package projection is a thin wrapper around a cartographic projection
// library that transforms arrays of (x,y) points and projects 1-D axes
// onto a 2-D grid of intersections between two PROJ.4-style descriptors.
package projection

import (
	"github.com/ctessum/geom/proj"

	"github.com/spatialmodel/gridxform/errs"
)

const deg2rad = 3.14159265358979323846 / 180
const rad2deg = 1 / deg2rad

// geographic reports whether sr is a geographic (longitude/latitude, no
// projection) spatial reference. A Grid's descriptor and its axis tags
// always agree on this, so checking the descriptor is equivalent to (and
// simpler than) threading axis tags through the adapter.
func geographic(sr *proj.SR) bool {
	return sr.Name == "longlat"
}

func parse(descr string) (*proj.SR, error) {
	sr, err := proj.Parse(descr)
	if err != nil {
		return nil, errs.Wrap(errs.ConfigurationError, "projection: parsing descriptor %q: %v", descr, err)
	}
	return sr, nil
}

// ProjectPoints transforms the arrays x, y in place from the src
// projection to the dst projection. Points at a geographic end of the
// transform are expected, and returned, in radians; at a projected end
// they are in that projection's native units.
func ProjectPoints(src, dst string, x, y []float64) error {
	srcSR, err := parse(src)
	if err != nil {
		return err
	}
	dstSR, err := parse(dst)
	if err != nil {
		return err
	}
	transform, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return errs.Wrap(errs.ProjectionFailure, "projection: building transform %q -> %q: %v", src, dst, err)
	}
	if len(x) != len(y) {
		return errs.Wrap(errs.ShapeMismatch, "projection: x has length %d but y has length %d", len(x), len(y))
	}

	srcGeo := geographic(srcSR)
	dstGeo := geographic(dstSR)
	for i := range x {
		px, py := x[i], y[i]
		if srcGeo {
			px, py = px*rad2deg, py*rad2deg
		}
		ox, oy, err := transform(px, py)
		if err != nil {
			return errs.Wrap(errs.ProjectionFailure, "projection: transforming point %d: %v", i, err)
		}
		if dstGeo {
			ox, oy = ox*deg2rad, oy*deg2rad
		}
		x[i], y[i] = ox, oy
	}
	return nil
}

// ProjectAxes projects every intersection of the 1-D axes xAxis (length
// nx) and yAxis (length ny), given in the src projection, into the dst
// projection. It returns two row-major arrays of length nx*ny.
func ProjectAxes(src, dst string, xAxis, yAxis []float64) (px, py []float64, err error) {
	nx, ny := len(xAxis), len(yAxis)
	px = make([]float64, nx*ny)
	py = make([]float64, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			px[j*nx+i] = xAxis[i]
			py[j*nx+i] = yAxis[j]
		}
	}
	if err := ProjectPoints(src, dst, px, py); err != nil {
		return nil, nil, err
	}
	return px, py, nil
}
