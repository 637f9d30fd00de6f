// Package looper implements a nested iteration over a logical shape of
// ordered named dimensions, with per-array declared dimension subsets and
// strides, used to drive evaluation of vertical converters and vertical
// interpolation without the caller having to pre-broadcast every input to
// the full output shape.
package looper

import "github.com/spatialmodel/gridxform/errs"

// Dims is an ordered, named logical shape: the outermost dimension is
// Names[0], and iteration advances outermost-first.
type Dims struct {
	Names   []string
	Lengths []int
}

// Volume returns the product of all dimension lengths.
func (d Dims) Volume() int {
	v := 1
	for _, n := range d.Lengths {
		v *= n
	}
	return v
}

// IndexOf returns the position of name within d.Names, or -1.
func (d Dims) IndexOf(name string) int {
	for i, n := range d.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// ShapeMerger merges several arrays' declared dimension subsets into one
// combined iteration shape, so inputs that depend on different subsets of
// the output dimensions (e.g. a time-independent depth, a per-column
// surface pressure, a per-level sigma) can all drive the same outer loop.
type ShapeMerger struct {
	names   []string
	lengths map[string]int
}

// NewShapeMerger returns an empty merger.
func NewShapeMerger() *ShapeMerger {
	return &ShapeMerger{lengths: make(map[string]int)}
}

// Merge folds dims/lengths into the accumulated shape. A dimension already
// seen must have the same length; a name not yet seen is appended in
// first-seen order.
func (m *ShapeMerger) Merge(dims []string, lengths []int) (*ShapeMerger, error) {
	if len(dims) != len(lengths) {
		return nil, errs.Wrap(errs.Internal, "looper: dims/lengths length mismatch (%d vs %d)", len(dims), len(lengths))
	}
	for i, name := range dims {
		if l, ok := m.lengths[name]; ok {
			if l != lengths[i] {
				return nil, errs.Wrap(errs.ShapeMismatch, "looper: dimension %q has conflicting lengths %d and %d", name, l, lengths[i])
			}
			continue
		}
		m.lengths[name] = lengths[i]
		m.names = append(m.names, name)
	}
	return m, nil
}

// Shape returns the merged Dims.
func (m *ShapeMerger) Shape() Dims {
	lengths := make([]int, len(m.names))
	for i, n := range m.names {
		lengths[i] = m.lengths[n]
	}
	return Dims{Names: append([]string(nil), m.names...), Lengths: lengths}
}
