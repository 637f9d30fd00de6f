package reproject

import (
	"math"
	"testing"

	"github.com/spatialmodel/gridxform/axis"
	"github.com/spatialmodel/gridxform/interp"
)

func TestReprojectIdentitySamePro(t *testing.T) {
	proj := "+proj=longlat +datum=WGS84"
	inX, _ := axis.New("x", axis.Longitude, []float64{0, 1, 2})
	inY, _ := axis.New("y", axis.Latitude, []float64{0, 1})
	outX, _ := axis.New("x", axis.Longitude, []float64{0, 1, 2})
	outY, _ := axis.New("y", axis.Latitude, []float64{0, 1})

	in := interp.Cube{Nx: 3, Ny: 2, Nz: 1, Data: []float64{
		1, 2, 3,
		4, 5, 6,
	}}

	req := Request{
		InProj: proj, InX: inX, InY: inY,
		OutProj: proj, OutX: outX, OutY: outY,
		Kernel: interp.Nearest,
	}
	out, err := Reproject(req, in)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range in.Data {
		if math.Abs(out.Data[i]-v) > 1e-9 {
			t.Errorf("index %d = %v, want %v", i, out.Data[i], v)
		}
	}
}

func TestReprojectShapeMismatch(t *testing.T) {
	proj := "+proj=longlat +datum=WGS84"
	inX, _ := axis.New("x", axis.Longitude, []float64{0, 1, 2})
	inY, _ := axis.New("y", axis.Latitude, []float64{0, 1})
	req := Request{InProj: proj, InX: inX, InY: inY, OutProj: proj, OutX: inX, OutY: inY, Kernel: interp.Nearest}
	in := interp.Cube{Nx: 2, Ny: 2, Nz: 1, Data: make([]float64, 4)}
	if _, err := Reproject(req, in); err == nil {
		t.Error("expected shape mismatch error")
	}
}
