// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/flint-ml/flint/tensor"
)

// TestShapeAPI verifies the re-exported shape surface behaves like the
// internal implementation.
func TestShapeAPI(t *testing.T) {
	s, err := tensor.NewShape(2, 3, 5)
	if err != nil {
		t.Fatalf("NewShape failed: %v", err)
	}
	if s.Rank() != 3 || s.Elements() != 30 {
		t.Errorf("rank/elements = %d/%d, want 3/30", s.Rank(), s.Elements())
	}

	idx, err := s.LinearIndex(1, 2, 4)
	if err != nil {
		t.Fatalf("LinearIndex failed: %v", err)
	}
	if idx != 29 {
		t.Errorf("LinearIndex(1, 2, 4) = %d, want 29", idx)
	}

	if _, err := tensor.NewShape(2, -1); !errors.Is(err, tensor.ErrOutOfRange) {
		t.Errorf("NewShape with negative length = %v, want ErrOutOfRange", err)
	}
}

// TestBroadcastArithmetic runs a complete broadcast add through the public
// surface only.
func TestBroadcastArithmetic(t *testing.T) {
	x, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	row, err := tensor.FromSlice([]float64{10, 100}, tensor.MustShape(2))
	if err != nil {
		t.Fatal(err)
	}

	y, err := x.AddTo(row)
	if err != nil {
		t.Fatalf("AddTo failed: %v", err)
	}

	want := [][]float64{{11, 102}, {13, 104}}
	for i, wr := range want {
		for j, w := range wr {
			if got := y.At(i, j); got != w {
				t.Errorf("y[%d %d] = %v, want %v", i, j, got, w)
			}
		}
	}

	// The operands are untouched.
	if x.At(0, 0) != 1 || row.At(1) != 100 {
		t.Error("allocating op must not mutate its operands")
	}
}

// TestViewSlicingAndReduction slices a window and reduces through it.
func TestViewSlicingAndReduction(t *testing.T) {
	grid := tensor.New[int64](tensor.MustShape(4, 4))
	for i := range grid.Data() {
		grid.Data()[i] = int64(i)
	}

	v, err := grid.Slice(tensor.Range{Start: 1, Len: 2}, tensor.Range{Start: 1, Len: 2})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}

	// Window covers elements 5, 6, 9, 10.
	if got := tensor.Accumulate(v, int64(0), func(acc, x int64) int64 { return acc + x }); got != 30 {
		t.Errorf("window sum = %d, want 30", got)
	}

	tensor.Apply(v, func(x int64) int64 { return -x })
	if grid.At(2, 2) != -10 {
		t.Errorf("grid[2 2] = %d, want -10 after in-place negate through view", grid.At(2, 2))
	}
	if grid.At(0, 0) != 0 || grid.At(3, 3) != 15 {
		t.Error("elements outside the window must be untouched")
	}
}

// TestGenericDrivers exercises the exported engine drivers with a non-scalar
// accumulator type.
func TestGenericDrivers(t *testing.T) {
	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.MustShape(3))

	collected := tensor.Accumulate(x.View(), []float32(nil), func(acc []float32, v float32) []float32 {
		return append(acc, v)
	})
	if len(collected) != 3 || collected[0] != 1 || collected[2] != 3 {
		t.Errorf("collected = %v, want [1 2 3]", collected)
	}

	doubled := tensor.ApplyTo(x.View(), func(v float32) float32 { return v * 2 })
	if doubled.At(1) != 4 {
		t.Errorf("doubled[1] = %v, want 4", doubled.At(1))
	}

	y, _ := tensor.FromSlice([]float32{10, 20, 30}, tensor.MustShape(3))
	sum, err := tensor.CombineTo(x.View(), y.View(), func(a, b float32) float32 { return a + b })
	if err != nil {
		t.Fatal(err)
	}
	if sum.At(2) != 33 {
		t.Errorf("sum[2] = %v, want 33", sum.At(2))
	}
}

// TestIterationPrimitives walks a shape with the exported odometer helpers.
func TestIterationPrimitives(t *testing.T) {
	lengths := []int{2, 3}
	indices := make([]int, 2)
	if err := tensor.InitForwardIndex(indices); err != nil {
		t.Fatal(err)
	}

	count := 0
	for {
		ok, err := tensor.NextIndex(lengths, indices)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		count++
	}
	if count != 6 {
		t.Errorf("forward traversal yielded %d indices, want 6", count)
	}

	if err := tensor.InitBackwardIndex(lengths, indices); err != nil {
		t.Fatal(err)
	}
	ok, err := tensor.PrevIndex(lengths, indices)
	if err != nil || !ok {
		t.Fatalf("PrevIndex = %v, %v", ok, err)
	}
	if indices[0] != 1 || indices[1] != 2 {
		t.Errorf("first backward index = %v, want [1 2]", indices)
	}
}

// TestViewCatalogue exercises the re-exported view-level operation
// catalogue on a sliced window.
func TestViewCatalogue(t *testing.T) {
	grid := tensor.New[float64](tensor.MustShape(3, 4))
	v, err := grid.Slice(tensor.Range{Start: 1, Len: 1}, tensor.Range{Start: 0, Len: 3})
	if err != nil {
		t.Fatal(err)
	}

	tensor.Fill(v, 2)
	if got := tensor.Sum(v); got != 6 {
		t.Errorf("Sum after Fill = %v, want 6", got)
	}
	if got := tensor.Product(v); got != 8 {
		t.Errorf("Product after Fill = %v, want 8", got)
	}

	tensor.AddScalar(v, 1)
	tensor.Negate(v)
	if got := grid.At(1, 0); got != -3 {
		t.Errorf("grid[1 0] = %v, want -3", got)
	}
	// Elements outside the window are untouched.
	if grid.At(0, 0) != 0 || grid.At(2, 3) != 0 {
		t.Error("view catalogue ops must stay inside the window")
	}

	row, err := tensor.FromSlice([]float64{5, 6, 7}, tensor.MustShape(3))
	if err != nil {
		t.Fatal(err)
	}
	if err := tensor.Copy(v, row.View()); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if grid.At(1, 2) != 7 {
		t.Errorf("grid[1 2] = %v, want 7 after Copy", grid.At(1, 2))
	}

	diff, err := tensor.SubTo(v, row.View())
	if err != nil {
		t.Fatal(err)
	}
	if got := tensor.Sum(diff.View()); got != 0 {
		t.Errorf("Sum of self-difference = %v, want 0", got)
	}

	scaled := tensor.MulScalarTo(v, 10)
	if scaled.At(0, 0) != 50 {
		t.Errorf("MulScalarTo = %v, want 50", scaled.At(0, 0))
	}

	tensor.Randomize(v, nil, 0, 1)
	for j := 0; j < 3; j++ {
		if p := grid.At(1, j); p < 0 || p >= 1 {
			t.Errorf("Randomize value %v outside [0, 1)", p)
		}
	}
}

// TestDegenerateShapeIteration walks a shape with a zero-length dimension:
// the documented iterate-then-index pattern must visit nothing.
func TestDegenerateShapeIteration(t *testing.T) {
	s := tensor.MustShape(2, 0, 3)
	data := tensor.New[float64](s) // empty buffer

	indices := make([]int, s.Rank())
	if err := tensor.InitForwardIndex(indices); err != nil {
		t.Fatal(err)
	}
	for {
		ok, err := tensor.NextIndex(s.Lengths(), indices)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		// Any visit would index an empty buffer.
		t.Fatalf("traversal of %v visited %v (buffer holds %d)", s, indices, len(data.Data()))
	}

	if err := tensor.InitBackwardIndex(s.Lengths(), indices); err != nil {
		t.Fatal(err)
	}
	if ok, _ := tensor.PrevIndex(s.Lengths(), indices); ok {
		t.Errorf("backward traversal of %v yielded %v, want exhaustion", s, indices)
	}
}

// TestInPlaceShapeGuard verifies in-place ops reject results that would
// outgrow the destination.
func TestInPlaceShapeGuard(t *testing.T) {
	col, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.MustShape(3, 1))
	row, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5}, tensor.MustShape(5))

	err := tensor.Combine(col.View(), row.View(), func(a, b float64) float64 { return a + b })
	if !errors.Is(err, tensor.ErrIncompatibleShape) {
		t.Errorf("Combine growing the destination = %v, want ErrIncompatibleShape", err)
	}
}
