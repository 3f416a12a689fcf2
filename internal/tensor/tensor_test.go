package tensor

import (
	"errors"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	tr := New[float32](MustShape(3, 4))

	if !tr.Shape().Equal(MustShape(3, 4)) {
		t.Errorf("shape = %v, want [3 4]", tr.Shape())
	}
	if len(tr.Data()) != 12 {
		t.Fatalf("buffer length = %d, want 12", len(tr.Data()))
	}
	for i, v := range tr.Data() {
		if v != 0 {
			t.Errorf("Data()[%d] = %v, want 0", i, v)
		}
	}
}

func TestFilled(t *testing.T) {
	tr := Filled(MustShape(2, 2), 3.5)
	for i, v := range tr.Data() {
		if v != 3.5 {
			t.Errorf("Data()[%d] = %v, want 3.5", i, v)
		}
	}
}

func TestEmptyShapeTensor(t *testing.T) {
	tr := New[int32](MustShape(2, 0, 5))
	if len(tr.Data()) != 0 {
		t.Errorf("degenerate tensor has %d elements, want 0", len(tr.Data()))
	}
}

func TestFromSlice(t *testing.T) {
	tr, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, MustShape(2, 3))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if got := tr.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %d, want 6", got)
	}

	_, err = FromSlice([]int32{1, 2, 3}, MustShape(2, 3))
	if !errors.Is(err, ErrIncompatibleShape) {
		t.Errorf("FromSlice with short data = %v, want ErrIncompatibleShape", err)
	}
}

func TestFromRows(t *testing.T) {
	tr, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if tr.At(0, 1) != 2 || tr.At(1, 0) != 3 {
		t.Error("FromRows laid out data incorrectly")
	}

	_, err = FromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrIncompatibleShape) {
		t.Errorf("ragged FromRows = %v, want ErrIncompatibleShape", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tr, _ := FromSlice([]float32{1, 2, 3, 4}, MustShape(2, 2))
	clone := tr.Clone()

	if clone.At(0, 0) != 1 || clone.At(1, 1) != 4 {
		t.Error("clone should be value-equal to the original")
	}

	clone.Set(999, 0, 0)
	if tr.At(0, 0) != 1 {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestAtSetPartialIndices(t *testing.T) {
	tr := New[int64](MustShape(2, 3, 5))
	tr.Data()[29] = 42

	// Full index and trailing partial index address the same element.
	if got := tr.At(1, 2, 4); got != 42 {
		t.Errorf("At(1, 2, 4) = %d, want 42", got)
	}

	tr.Set(7, 2, 4) // implicit leading 0: element [0 2 4]
	if got := tr.At(0, 2, 4); got != 7 {
		t.Errorf("At(0, 2, 4) = %d, want 7", got)
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At with an out-of-range index should panic")
		}
	}()
	New[float32](MustShape(2, 2)).At(2, 0)
}

func TestScalarTensor(t *testing.T) {
	tr := New[float64](MustShape())
	if tr.Elements() != 1 {
		t.Fatalf("scalar tensor has %d elements, want 1", tr.Elements())
	}
	tr.SetLinear(0, 2.5)
	if got := tr.Item(); got != 2.5 {
		t.Errorf("Item() = %v, want 2.5", got)
	}
	if got := tr.At(); got != 2.5 {
		t.Errorf("At() = %v, want 2.5", got)
	}
}

func TestSliceView(t *testing.T) {
	// 4x6 grid holding its own linear offsets.
	tr := New[int32](MustShape(4, 6))
	for i := range tr.Data() {
		tr.Data()[i] = int32(i)
	}

	v, err := tr.Slice(Range{1, 2}, Range{2, 3})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if !v.Shape().Equal(MustShape(2, 3)) {
		t.Fatalf("view shape = %v, want [2 3]", v.Shape())
	}

	// View element [i j] maps to parent element [1+i 2+j].
	if got := v.At(0, 0); got != 8 {
		t.Errorf("view At(0, 0) = %d, want 8", got)
	}
	if got := v.At(1, 2); got != 16 {
		t.Errorf("view At(1, 2) = %d, want 16", got)
	}

	// Writes through the view land in the parent buffer.
	v.Set(-1, 1, 0)
	if got := tr.At(2, 2); got != -1 {
		t.Errorf("parent At(2, 2) = %d, want -1 after view write", got)
	}
}

func TestSliceOfSlice(t *testing.T) {
	tr := New[int32](MustShape(4, 6))
	for i := range tr.Data() {
		tr.Data()[i] = int32(i)
	}

	outer, err := tr.Slice(Range{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	inner, err := outer.Slice(Range{1, 1}, Range{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	// inner[0 j] is parent [2 2+j].
	if got := inner.At(0, 0); got != 14 {
		t.Errorf("nested view At(0, 0) = %d, want 14", got)
	}
	if got := inner.At(0, 1); got != 15 {
		t.Errorf("nested view At(0, 1) = %d, want 15", got)
	}
}

func TestViewCloneMaterializes(t *testing.T) {
	tr := New[int32](MustShape(4, 6))
	for i := range tr.Data() {
		tr.Data()[i] = int32(i)
	}

	v, _ := tr.Slice(Range{1, 2}, Range{2, 3})
	c := v.Clone()

	if !c.Shape().Equal(MustShape(2, 3)) {
		t.Fatalf("clone shape = %v, want [2 3]", c.Shape())
	}
	// Clone is dense: data in row-major order of the window.
	want := []int32{8, 9, 10, 14, 15, 16}
	for i, w := range want {
		if c.Data()[i] != w {
			t.Errorf("clone Data()[%d] = %d, want %d", i, c.Data()[i], w)
		}
	}

	// Storage-independent from the parent.
	c.Set(100, 0, 0)
	if tr.At(1, 2) != 8 {
		t.Error("mutating the materialized clone must not affect the source")
	}
}

func TestNewViewSpanValidation(t *testing.T) {
	buf := make([]int32, 5)

	if _, err := NewView(buf, MustShape(5)); err != nil {
		t.Errorf("NewView over exact buffer failed: %v", err)
	}
	if _, err := NewView(buf, MustShape(2, 3)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NewView over short buffer = %v, want ErrOutOfRange", err)
	}
}
