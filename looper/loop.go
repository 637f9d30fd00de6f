package looper

import "github.com/spatialmodel/gridxform/errs"

// ArrayRef declares one registered array's dependency on a subset of a
// Loop's dimensions and its per-dimension stride, used to compute that
// array's current flat offset at each step.
type ArrayRef struct {
	Name    string
	Dims    []string // subset of the Loop's Dims.Names, same relative order
	Strides []int    // one stride per entry in Dims
}

// Loop is a nested index stepper over a Dims shape. Each registered array
// exposes its current flat offset via Offset, recomputed from the
// dimensions it actually depends on -- an array that does not depend on
// the innermost dimension returns the same offset across all of that
// dimension's iterations, avoiding recomputation the caller would
// otherwise have to hand-code.
type Loop struct {
	shape  Dims
	arrays map[string]ArrayRef
	index  []int
	done   bool
}

// NewLoop constructs a Loop over shape with the given registered arrays.
// Every array's Dims must be a subset of shape.Names.
func NewLoop(shape Dims, arrays []ArrayRef) (*Loop, error) {
	l := &Loop{
		shape:  shape,
		arrays: make(map[string]ArrayRef, len(arrays)),
		index:  make([]int, len(shape.Names)),
		done:   shape.Volume() == 0,
	}
	for _, a := range arrays {
		if len(a.Dims) != len(a.Strides) {
			return nil, errs.Wrap(errs.Internal, "looper: array %q has %d dims but %d strides", a.Name, len(a.Dims), len(a.Strides))
		}
		for _, d := range a.Dims {
			if shape.IndexOf(d) < 0 {
				return nil, errs.Wrap(errs.ConfigurationError, "looper: array %q depends on dimension %q not in the loop's shape", a.Name, d)
			}
		}
		l.arrays[a.Name] = a
	}
	return l, nil
}

// Done reports whether the loop has visited every index tuple.
func (l *Loop) Done() bool { return l.done }

// Index returns the current logical index tuple, ordered as shape.Names.
func (l *Loop) Index() []int { return l.index }

// Offset returns the registered array name's current flat offset, the sum
// of index[d]*stride[d] over the dimensions that array depends on.
func (l *Loop) Offset(name string) int {
	a, ok := l.arrays[name]
	if !ok {
		return 0
	}
	offset := 0
	for i, d := range a.Dims {
		pos := l.shape.IndexOf(d)
		offset += l.index[pos] * a.Strides[i]
	}
	return offset
}

// Next advances the index tuple by one, innermost dimension fastest. It
// returns false once the outermost dimension has been exhausted.
func (l *Loop) Next() bool {
	if l.done {
		return false
	}
	for d := len(l.shape.Names) - 1; d >= 0; d-- {
		l.index[d]++
		if l.index[d] < l.shape.Lengths[d] {
			return true
		}
		l.index[d] = 0
		if d == 0 {
			l.done = true
			return false
		}
	}
	return false
}

// InnermostShared returns the innermost (trailing) run of dimension names
// that every registered array depends on -- the block that can be
// vectorized in bulk rather than stepped one index at a time.
func (l *Loop) InnermostShared() []string {
	n := len(l.shape.Names)
	shared := 0
	for i := n - 1; i >= 0; i-- {
		name := l.shape.Names[i]
		for _, a := range l.arrays {
			if !containsString(a.Dims, name) {
				return l.shape.Names[n-shared:]
			}
		}
		shared++
	}
	return l.shape.Names[n-shared:]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
