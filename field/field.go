// Package field holds the Grid, Field, and CoordSys data model: gridded
// samples backed by github.com/ctessum/sparse.DenseArray, the axes they
// are indexed by, and the coordinate system those axes belong to.
package field

import (
	"github.com/ctessum/sparse"

	"github.com/spatialmodel/gridxform/axis"
	"github.com/spatialmodel/gridxform/errs"
)

// Grid pairs an x and y axis with the projection descriptor they are
// expressed in. The invariant that axis tags must match the projection
// kind is enforced at construction.
type Grid struct {
	X, Y       *axis.Axis
	Projection string
}

// NewGrid validates the Grid invariant: a geographic (longlat) projection
// must carry longitude/latitude axes, and a projected one must carry
// projection-x/projection-y axes.
func NewGrid(x, y *axis.Axis, proj string, geographic bool) (*Grid, error) {
	if geographic {
		if x.Tag != axis.Longitude || y.Tag != axis.Latitude {
			return nil, errs.Wrap(errs.ConfigurationError, "grid: geographic projection requires longitude/latitude axes")
		}
	} else {
		if x.Tag != axis.ProjectionX || y.Tag != axis.ProjectionY {
			return nil, errs.Wrap(errs.ConfigurationError, "grid: projected grid requires projection-x/projection-y axes")
		}
	}
	return &Grid{X: x, Y: y, Projection: proj}, nil
}

// Field is a multi-dimensional array of floating-point samples, plus an
// ordered list of dimension names and the Axis backing each one. Samples
// are stored in a sparse.DenseArray so the product of dimension lengths
// always equals the storage size by construction.
type Field struct {
	Name string
	Dims []string
	Axes map[string]*axis.Axis
	Data *sparse.DenseArray

	Units       string
	ScaleFactor float64
	Offset      float64
	HasFill     bool
	FillValue   float64
}

// NewField allocates a zero-valued Field over the given named dimensions.
// Each entry of axes must be keyed by the matching dims entry.
func NewField(name string, dims []string, axes map[string]*axis.Axis) (*Field, error) {
	shape := make([]int, len(dims))
	for i, d := range dims {
		a, ok := axes[d]
		if !ok {
			return nil, errs.Wrap(errs.ConfigurationError, "field %q: no axis registered for dimension %q", name, d)
		}
		shape[i] = a.Len()
	}
	return &Field{
		Name:        name,
		Dims:        dims,
		Axes:        axes,
		Data:        sparse.ZerosDense(shape...),
		ScaleFactor: 1,
	}, nil
}

// Shape returns the per-dimension lengths, in Dims order.
func (f *Field) Shape() []int { return f.Data.GetShape() }

// DimIndex returns the position of name within f.Dims, or -1.
func (f *Field) DimIndex(name string) int {
	for i, d := range f.Dims {
		if d == name {
			return i
		}
	}
	return -1
}
