package field

import (
	"testing"

	"github.com/spatialmodel/gridxform/axis"
)

func TestNewFieldShape(t *testing.T) {
	x, _ := axis.New("x", axis.ProjectionX, []float64{0, 1, 2})
	y, _ := axis.New("y", axis.ProjectionY, []float64{0, 1})
	f, err := NewField("temp", []string{"y", "x"}, map[string]*axis.Axis{"x": x, "y": y})
	if err != nil {
		t.Fatal(err)
	}
	shape := f.Shape()
	if len(shape) != 2 || shape[0] != 2 || shape[1] != 3 {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}
}

func TestNewGridInvariant(t *testing.T) {
	lon, _ := axis.New("lon", axis.Longitude, []float64{-1, 0, 1})
	lat, _ := axis.New("lat", axis.Latitude, []float64{-1, 0, 1})
	if _, err := NewGrid(lon, lat, "+proj=longlat", true); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGrid(lon, lat, "+proj=merc", false); err == nil {
		t.Error("expected invariant violation for projected grid with lon/lat axes")
	}
}
