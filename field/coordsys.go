package field

import "github.com/spatialmodel/gridxform/axis"

// CoordSys is the coordinate system of a field: the four distinguished
// axes, any of which may be absent. The vertical transformation
// associated with GeoZ is modeled separately by package vertical, which
// a caller selects and parameterizes once it has read off GeoZ's native
// coordinate from CF attributes, keeping this package free of any
// dependency on the vertical-converter family.
type CoordSys struct {
	GeoX, GeoY, GeoZ, Time *axis.Axis
}
