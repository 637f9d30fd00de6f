package vector

import (
	"math"
	"testing"
)

const wgs84 = "+proj=longlat +datum=WGS84 +no_defs"
const merc = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"

func TestJacobianIdentityProjection(t *testing.T) {
	outX := []float64{-1000, 0, 1000}
	outY := []float64{-1000, 0, 1000}
	m, err := JacobianMatrix(merc, merc, outX, outY)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(outX)*len(outY); i++ {
		m00, m01, m10, m11 := m[4*i], m[4*i+1], m[4*i+2], m[4*i+3]
		if math.Abs(m00-1) > 1e-6 || math.Abs(m11-1) > 1e-6 || math.Abs(m01) > 1e-6 || math.Abs(m10) > 1e-6 {
			t.Errorf("cell %d: identity projection should yield the identity matrix, got [%v %v %v %v]", i, m00, m01, m10, m11)
		}
	}
}

func TestRotatePreservesMagnitude(t *testing.T) {
	// A pure-rotation matrix (90 degrees) should preserve magnitude by
	// construction, but exercise the renormalization path anyway.
	matrix := []float64{0, 1, -1, 0}
	u := []float64{3}
	v := []float64{4}
	if err := Rotate(PreserveMagnitude, matrix, u, v, 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	mag := math.Hypot(u[0], v[0])
	if math.Abs(mag-5) > 1e-9 {
		t.Errorf("magnitude = %v, want 5", mag)
	}
}

func TestRotateShapeMismatch(t *testing.T) {
	matrix := make([]float64, 4)
	u := []float64{1, 2}
	v := []float64{1, 2}
	if err := Rotate(PreserveDirection, matrix, u, v, 1, 1, 1); err == nil {
		t.Error("expected shape mismatch error")
	}
}
