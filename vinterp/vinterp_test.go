package vinterp

import (
	"math"
	"testing"

	"github.com/spatialmodel/gridxform/interp"
	"github.com/spatialmodel/gridxform/vertical"
)

func TestColumnLinearInterpolation(t *testing.T) {
	conv := &vertical.Identity{Levels_: []float64{1000, 800, 600, 400}}
	req := Request{
		Converter: conv,
		Kernel:    interp.Linear,
		Targets:   []float64{900, 700, 500},
	}
	out, err := Column(req, 0, 0, 0, []float64{10, 20, 30, 40})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{15, 25, 35}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("target %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestColumnExactLevel(t *testing.T) {
	conv := &vertical.Identity{Levels_: []float64{1000, 800, 600}}
	req := Request{
		Converter: conv,
		Kernel:    interp.Linear,
		Targets:   []float64{800},
	}
	out, err := Column(req, 0, 0, 0, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(out[0]-2) > 1e-9 {
		t.Errorf("got %v, want 2", out[0])
	}
}

func TestColumnRejectsInvalidTarget(t *testing.T) {
	conv := &vertical.OceanSCoordinateToDepth{
		Formula: vertical.OceanSG1,
		S:       []float64{-1, 0},
		C:       []float64{-1, 0},
		DepthC:  1,
		Depth:   []float64{50},
		Eta:     []float64{0},
		Nx:      1, Ny: 1,
	}
	req := Request{
		Converter: conv,
		Kernel:    interp.Linear,
		Targets:   []float64{100}, // below the sea floor at depth 50
	}
	out, err := Column(req, 0, 0, 0, []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(out[0]) {
		t.Errorf("expected undefined sentinel for below-floor target, got %v", out[0])
	}
}

func TestColumnShapeMismatch(t *testing.T) {
	conv := &vertical.Identity{Levels_: []float64{1000, 800}}
	req := Request{Converter: conv, Kernel: interp.Linear, Targets: []float64{900}}
	if _, err := Column(req, 0, 0, 0, []float64{1, 2, 3}); err == nil {
		t.Error("expected shape mismatch error")
	}
}
