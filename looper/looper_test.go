package looper

import "testing"

func TestLoopVisitsEveryIndex(t *testing.T) {
	shape := Dims{Names: []string{"t", "y", "x"}, Lengths: []int{2, 3, 4}}
	l, err := NewLoop(shape, nil)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for !l.Done() {
		count++
		l.Next()
	}
	if count != 24 {
		t.Errorf("visited %d indices, want 24", count)
	}
}

func TestLoopOffsetDependsOnlyOnDeclaredDims(t *testing.T) {
	// depth depends only on (y,x); s depends only on (z).
	shape := Dims{Names: []string{"z", "y", "x"}, Lengths: []int{2, 2, 2}}
	arrays := []ArrayRef{
		{Name: "s", Dims: []string{"z"}, Strides: []int{1}},
		{Name: "depth", Dims: []string{"y", "x"}, Strides: []int{2, 1}},
	}
	l, err := NewLoop(shape, arrays)
	if err != nil {
		t.Fatal(err)
	}
	var depthOffsets, sOffsets []int
	for !l.Done() {
		depthOffsets = append(depthOffsets, l.Offset("depth"))
		sOffsets = append(sOffsets, l.Offset("s"))
		l.Next()
	}
	// depth should repeat every 4 entries (one full (y,x) sweep) since it does
	// not depend on z.
	if depthOffsets[0] != depthOffsets[4] {
		t.Errorf("depth offset should be constant across z, got %v vs %v", depthOffsets[0], depthOffsets[4])
	}
	// s should cycle 0,0,0,0,1,1,1,1 over z=0,1 (z is outermost).
	if sOffsets[0] != 0 || sOffsets[4] != 1 {
		t.Errorf("s offsets = %v, want z-outer cycling", sOffsets)
	}
}

func TestShapeMergerUnion(t *testing.T) {
	m := NewShapeMerger()
	if _, err := m.Merge([]string{"y", "x"}, []int{3, 4}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Merge([]string{"t"}, []int{5}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Merge([]string{"x"}, []int{4}); err != nil {
		t.Fatal(err)
	}
	shape := m.Shape()
	if shape.Volume() != 3*4*5 {
		t.Errorf("volume = %d, want %d", shape.Volume(), 3*4*5)
	}
}

func TestShapeMergerConflict(t *testing.T) {
	m := NewShapeMerger()
	if _, err := m.Merge([]string{"x"}, []int{4}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Merge([]string{"x"}, []int{5}); err == nil {
		t.Error("expected a conflicting-length error")
	}
}

func TestInnermostShared(t *testing.T) {
	shape := Dims{Names: []string{"t", "y", "x"}, Lengths: []int{2, 2, 2}}
	arrays := []ArrayRef{
		{Name: "a", Dims: []string{"t", "y", "x"}, Strides: []int{4, 2, 1}},
		{Name: "b", Dims: []string{"y", "x"}, Strides: []int{2, 1}},
	}
	l, err := NewLoop(shape, arrays)
	if err != nil {
		t.Fatal(err)
	}
	shared := l.InnermostShared()
	if len(shared) != 2 || shared[0] != "y" || shared[1] != "x" {
		t.Errorf("InnermostShared() = %v, want [y x]", shared)
	}
}
