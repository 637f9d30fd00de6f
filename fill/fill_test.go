package fill

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestCreepSingleHole(t *testing.T) {
	// 3x3 grid, center undefined, all four von-Neumann neighbours = 4.
	nx, ny := 3, 3
	data := []float64{
		1, 4, 1,
		4, math.NaN(), 4,
		1, 4, 1,
	}
	n, err := Creep(nx, ny, data, CreepConfig{Repeat: 1})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Creep changed %d cells, want 1", n)
	}
	center := data[1*nx+1]
	if center != 4 {
		t.Errorf("center = %v, want 4", center)
	}
}

func TestCreepMultipleHolesPropagate(t *testing.T) {
	// corners and center undefined; each has at least one defined neighbour.
	nx, ny := 3, 3
	data := []float64{
		math.NaN(), 4, math.NaN(),
		4, math.NaN(), 4,
		math.NaN(), 4, math.NaN(),
	}
	n, err := Creep(nx, ny, data, CreepConfig{Repeat: 1})
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("Creep changed %d cells, want 5", n)
	}
	for i, v := range data {
		if v != 4 {
			t.Errorf("index %d = %v, want 4", i, v)
		}
	}
}

func TestCreepPreservesKnownValues(t *testing.T) {
	nx, ny := 3, 3
	data := []float64{
		1, 2, 3,
		4, math.NaN(), 6,
		7, 8, 9,
	}
	want := append([]float64(nil), data...)
	_, err := Creep(nx, ny, data, CreepConfig{Repeat: 1})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range want {
		if math.IsNaN(v) {
			continue
		}
		if data[i] != v {
			t.Errorf("index %d changed from %v to %v", i, v, data[i])
		}
	}
}

func TestCreepIsolatedHoleUnreachable(t *testing.T) {
	// A 1x1 grid that is entirely undefined has no defined neighbour ever.
	nx, ny := 1, 1
	data := []float64{math.NaN()}
	n, err := Creep(nx, ny, data, CreepConfig{Repeat: 1})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Creep changed %d cells, want 0", n)
	}
	if !math.IsNaN(data[0]) {
		t.Error("expected cell to remain undefined")
	}
}

func TestPoissonPreservesKnownValues(t *testing.T) {
	nx, ny := 5, 5
	data := make([]float64, nx*ny)
	for i := range data {
		data[i] = float64(i)
	}
	// punch a hole away from the border, where the relaxation stencil applies.
	hole := 2*nx + 2
	want := append([]float64(nil), data...)
	data[hole] = math.NaN()

	n, err := Poisson(nx, ny, data, PoissonConfig{RelaxCrit: 1e-6, CorrEff: 1.0, MaxLoop: 50})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Poisson changed %d cells, want 1", n)
	}
	for i, v := range want {
		if i == hole {
			continue
		}
		if data[i] != v {
			t.Errorf("index %d changed from %v to %v, want unchanged", i, v, data[i])
		}
	}
	if math.IsNaN(data[hole]) {
		t.Error("expected hole to be filled")
	}
}

func TestPoissonHoleNearsNeighborMean(t *testing.T) {
	nx, ny := 5, 5
	data := make([]float64, nx*ny)
	for i := range data {
		data[i] = 10
	}
	hole := 2*nx + 2
	neighborsBefore := []float64{data[hole-1], data[hole+1], data[hole-nx], data[hole+nx]}
	data[hole] = math.NaN()

	if _, err := Poisson(nx, ny, data, PoissonConfig{RelaxCrit: 1e-6, CorrEff: 1.0, MaxLoop: 50}); err != nil {
		t.Fatal(err)
	}
	want := stat.Mean(neighborsBefore, nil)
	if math.Abs(data[hole]-want) > 1e-9 {
		t.Errorf("filled hole = %v, want %v (neighbor mean)", data[hole], want)
	}
}

func TestPoissonNoHolesIsNoop(t *testing.T) {
	nx, ny := 3, 3
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	n, err := Poisson(nx, ny, data, PoissonConfig{RelaxCrit: 0.1, CorrEff: 1, MaxLoop: 10})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Poisson changed %d cells, want 0", n)
	}
}
