package axis

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSearchRoundTrip(t *testing.T) {
	values := []float64{10, 20.5, 33, 40, 44.2}
	a, err := New("x", Generic, values)
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < len(values); j++ {
		got := a.Search(values[j])
		if got != float64(j) {
			t.Errorf("Search(%v) = %v, want %v", values[j], got, j)
		}
	}
	rng := values[len(values)-1] - values[0]
	for j := 0; j < len(values)-1; j++ {
		mid := (values[j] + values[j+1]) / 2
		got := a.Search(mid)
		want := float64(j) + 0.5
		if !almostEqual(got, want, 1e-9*rng) {
			t.Errorf("Search(%v) = %v, want %v", mid, got, want)
		}
	}
}

func TestSearchExtrapolationLow(t *testing.T) {
	a, err := New("x", Generic, []float64{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	got := a.Search(5)
	if !almostEqual(got, -0.5, 1e-9) {
		t.Errorf("Search(5) = %v, want -0.5", got)
	}
}

func TestSearchExtrapolationHigh(t *testing.T) {
	a, err := New("x", Generic, []float64{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	got := a.Search(35)
	if !almostEqual(got, 2.5, 1e-9) {
		t.Errorf("Search(35) = %v, want 2.5", got)
	}
}

func TestSearchDescending(t *testing.T) {
	a, err := New("x", Generic, []float64{30, 20, 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Search(20); got != 1 {
		t.Errorf("Search(20) = %v, want 1", got)
	}
	if got := a.Search(25); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("Search(25) = %v, want 0.5", got)
	}
}

func TestLongitudeWrap(t *testing.T) {
	n := 8
	values := make([]float64, n)
	for i := range values {
		values[i] = -math.Pi + float64(i)*(2*math.Pi/float64(n))
	}
	a, err := New("lon", Longitude, values)
	if err != nil {
		t.Fatal(err)
	}
	q1 := 1.75 * math.Pi
	q2 := -0.25 * math.Pi
	got1 := a.Search(q1)
	got2 := a.Search(q2)
	if !almostEqual(got1, got2, 1e-9) {
		t.Errorf("Search(1.75pi)=%v != Search(-0.25pi)=%v", got1, got2)
	}
}

func TestNewRejectsNonMonotone(t *testing.T) {
	if _, err := New("bad", Generic, []float64{1, 2, 2, 3}); err == nil {
		t.Error("expected error for non-strictly-monotone axis")
	}
}
