// Package sentinel centralizes the undefined-sample representation on NaN
// inside the core, converting at the reader/writer boundary from and to a
// field's declared legacy fill value.
package sentinel

import "math"

// ToNaN replaces every occurrence of fillValue in data with NaN in place,
// returning the number of cells changed. It is a no-op if fillValue is
// itself NaN (nothing to normalize).
func ToNaN(data []float64, fillValue float64) int {
	if math.IsNaN(fillValue) {
		return 0
	}
	n := 0
	for i, v := range data {
		if v == fillValue {
			data[i] = math.NaN()
			n++
		}
	}
	return n
}

// FromNaN replaces every NaN in data with fillValue in place, returning
// the number of cells changed. It is a no-op if fillValue is itself NaN.
func FromNaN(data []float64, fillValue float64) int {
	if math.IsNaN(fillValue) {
		return 0
	}
	n := 0
	for i, v := range data {
		if math.IsNaN(v) {
			data[i] = fillValue
			n++
		}
	}
	return n
}
