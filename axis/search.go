package axis

import "sort"

// Search returns the fractional index p such that linearly interpolating
// the axis at p yields q. Values inside [axis[0], axis[N-1]] return p in
// [0, N-1]; values outside are linearly extrapolated from the nearest
// bracketing pair. Longitude axes normalize q into the axis's own 2*pi
// window first.
func (a *Axis) Search(q float64) float64 {
	n := len(a.Values)
	if n == 1 {
		return 0
	}
	if a.Tag == Longitude {
		q = a.normalizeLongitude(q)
	}

	asc := a.Ascending()
	idx, exact := a.locate(q, asc)
	if exact {
		return float64(idx)
	}

	// idx is the insertion position: the first index whose value has
	// already been passed by q in the axis's direction of travel.
	nPos := idx
	if nPos == n {
		nPos-- // extrapolate to the right
	} else if nPos == 0 {
		nPos++ // extrapolate to the left
	}

	v0 := a.Values[nPos-1]
	v1 := a.Values[nPos]
	slope := v1 - v0
	offset := v1 - slope*float64(nPos)
	return (q - offset) / slope
}

// locate performs an O(log N) bracket lookup that returns either the
// exact index of q, or the insertion position that would keep the axis
// ordered.
func (a *Axis) locate(q float64, asc bool) (idx int, exact bool) {
	n := len(a.Values)
	if asc {
		idx = sort.Search(n, func(i int) bool { return a.Values[i] >= q })
	} else {
		idx = sort.Search(n, func(i int) bool { return a.Values[i] <= q })
	}
	if idx < n && a.Values[idx] == q {
		return idx, true
	}
	return idx, false
}
