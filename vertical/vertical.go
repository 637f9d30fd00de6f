// Package vertical provides one type per CF vertical transform, each
// able to compute the physical levels (pressure, altitude, depth) of a
// column's native vertical grid and to judge whether a target physical
// value is within that column's valid range.
package vertical

import "github.com/spatialmodel/gridxform/errs"

// Converter produces, for a column (x,y,t), the physical vertical levels
// of the native grid at that column, and validates target physical
// values against the column's range.
type Converter interface {
	// Levels returns the physical coordinate of every native level at
	// column (x,y,t), outermost-to-innermost as declared by the native
	// vertical axis.
	Levels(x, y, t int) ([]float64, error)

	// IsValid reports whether vVal is a physically meaningful target
	// coordinate for column (x,y,t) (e.g. not below the sea floor).
	IsValid(vVal float64, x, y, t int) bool
}

// columnIndex computes the flat offset of a 3-D (x,y,t) column sample in
// a row-major buffer of shape (nt,ny,nx).
func columnIndex(x, y, t, nx, ny int) int {
	return (t*ny+y)*nx + x
}

// columnIndex4 computes the flat offset of a 4-D (x,y,z,t) sample in a
// row-major buffer of shape (nt,nz,ny,nx).
func columnIndex4(x, y, z, t, nx, ny, nz int) int {
	return ((t*nz+z)*ny+y)*nx + x
}

func checkLen(name string, got, want int) error {
	if got != want {
		return errs.Wrap(errs.ShapeMismatch, "vertical: %s has length %d, want %d", name, got, want)
	}
	return nil
}
