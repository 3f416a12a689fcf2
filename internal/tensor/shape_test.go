package tensor

import (
	"errors"
	"testing"
)

func TestNewShapeElements(t *testing.T) {
	tests := []struct {
		lengths []int
		elems   int
	}{
		{nil, 1}, // Scalar
		{[]int{5}, 5},
		{[]int{3, 4}, 12},
		{[]int{2, 3, 5}, 30},
		{[]int{1, 1, 1}, 1},
		{[]int{2, 0, 5}, 0},
		{[]int{0}, 0},
	}

	for _, tt := range tests {
		s, err := NewShape(tt.lengths...)
		if err != nil {
			t.Fatalf("NewShape(%v) failed: %v", tt.lengths, err)
		}
		if got := s.Elements(); got != tt.elems {
			t.Errorf("NewShape(%v).Elements() = %d, want %d", tt.lengths, got, tt.elems)
		}
		if got := s.Rank(); got != len(tt.lengths) {
			t.Errorf("NewShape(%v).Rank() = %d, want %d", tt.lengths, got, len(tt.lengths))
		}
	}
}

func TestNewShapeNegativeLength(t *testing.T) {
	for _, lengths := range [][]int{{-1}, {3, -4}, {-2, 0}} {
		_, err := NewShape(lengths...)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("NewShape(%v) = %v, want ErrOutOfRange", lengths, err)
		}
	}
}

func TestNewShapeStrides(t *testing.T) {
	tests := []struct {
		lengths []int
		strides []int
	}{
		{[]int{4}, []int{1}},
		{[]int{3, 4}, []int{4, 1}},
		{[]int{2, 3, 5}, []int{15, 5, 1}},
		{[]int{2, 0, 5}, []int{0, 0, 0}}, // degenerate shapes get all-zero strides
	}

	for _, tt := range tests {
		s := MustShape(tt.lengths...)
		got := s.Strides()
		if len(got) != len(tt.strides) {
			t.Fatalf("Shape%v.Strides() = %v, want %v", tt.lengths, got, tt.strides)
		}
		for d := range got {
			if got[d] != tt.strides[d] {
				t.Errorf("Shape%v.Strides()[%d] = %d, want %d", tt.lengths, d, got[d], tt.strides[d])
			}
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  []int
		equal bool
	}{
		{[]int{3, 4}, []int{3, 4}, true},
		{[]int{3, 4}, []int{4, 3}, false},
		{[]int{3}, []int{3, 1}, false},
		{nil, nil, true},
	}

	for _, tt := range tests {
		a, b := MustShape(tt.a...), MustShape(tt.b...)
		if got := a.Equal(b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}

	// Equality ignores strides: a sliced window of the same lengths compares
	// equal to a dense shape.
	parent := MustShape(4, 6)
	sub, _, err := parent.SubShape(Range{1, 2}, Range{2, 3})
	if err != nil {
		t.Fatalf("SubShape failed: %v", err)
	}
	if !sub.Equal(MustShape(2, 3)) {
		t.Errorf("sub-shape %v should equal dense [2 3]", sub)
	}
}

func TestLinearIndex(t *testing.T) {
	s := MustShape(2, 3, 5)

	tests := []struct {
		indices []int
		want    int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{1, 2, 4}, 29}, // last element
		{[]int{1, 0, 3}, 18},
		{[]int{2, 4}, 14}, // partial: trailing two dimensions only
		{[]int{3}, 3},
		{nil, 0},
	}

	for _, tt := range tests {
		got, err := s.LinearIndex(tt.indices...)
		if err != nil {
			t.Fatalf("LinearIndex(%v) failed: %v", tt.indices, err)
		}
		if got != tt.want {
			t.Errorf("LinearIndex(%v) = %d, want %d", tt.indices, got, tt.want)
		}
		if got := s.LinearIndexUnchecked(tt.indices...); got != tt.want {
			t.Errorf("LinearIndexUnchecked(%v) = %d, want %d", tt.indices, got, tt.want)
		}
	}
}

func TestLinearIndexOutOfRange(t *testing.T) {
	s := MustShape(2, 3, 5)

	bad := [][]int{
		{2, 0, 0},       // first dimension overflow
		{0, 3, 0},       // middle dimension overflow
		{0, 0, 5},       // last dimension overflow
		{0, -1, 0},      // negative index
		{0, 0, 0, 0},    // more indices than rank
		{1, 1, 1, 1, 1}, // much longer than rank
	}

	for _, indices := range bad {
		if _, err := s.LinearIndex(indices...); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("LinearIndex(%v) = %v, want ErrOutOfRange", indices, err)
		}
	}
}

func TestSubShape(t *testing.T) {
	parent := MustShape(4, 6)

	sub, offset, err := parent.SubShape(Range{1, 2}, Range{2, 3})
	if err != nil {
		t.Fatalf("SubShape failed: %v", err)
	}
	if offset != 1*6+2 {
		t.Errorf("offset = %d, want 8", offset)
	}
	if got := sub.Lengths(); got[0] != 2 || got[1] != 3 {
		t.Errorf("sub lengths = %v, want [2 3]", got)
	}
	// Strides come from the parent, not recomputed.
	if got := sub.Strides(); got[0] != 6 || got[1] != 1 {
		t.Errorf("sub strides = %v, want [6 1]", got)
	}
	if sub.Elements() != 6 {
		t.Errorf("sub elements = %d, want 6", sub.Elements())
	}
}

func TestSubShapeDefaultsTrailing(t *testing.T) {
	parent := MustShape(4, 6)

	// One range: the second dimension keeps its full extent.
	sub, offset, err := parent.SubShape(Range{2, 2})
	if err != nil {
		t.Fatalf("SubShape failed: %v", err)
	}
	if offset != 12 {
		t.Errorf("offset = %d, want 12", offset)
	}
	if got := sub.Lengths(); got[0] != 2 || got[1] != 6 {
		t.Errorf("sub lengths = %v, want [2 6]", got)
	}
}

func TestSubShapeOutOfRange(t *testing.T) {
	parent := MustShape(4, 6)

	cases := [][]Range{
		{},                           // no ranges
		{{0, 1}, {0, 1}, {0, 1}},     // more ranges than rank
		{{3, 2}},                     // escapes dimension 0
		{{0, 5}},                     // length past dimension 0
		{{-1, 2}},                    // negative start
		{{0, 2}, {4, 3}},             // escapes dimension 1
	}

	for _, ranges := range cases {
		if _, _, err := parent.SubShape(ranges...); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SubShape(%v) = %v, want ErrOutOfRange", ranges, err)
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := MustShape(2, 3).String(); got != "[2 3]" {
		t.Errorf("String() = %q, want %q", got, "[2 3]")
	}
	if got := MustShape().String(); got != "scalar" {
		t.Errorf("scalar String() = %q, want %q", got, "scalar")
	}
}
