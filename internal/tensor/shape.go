package tensor

import (
	"github.com/pkg/errors"
)

// MaxRank is the highest tensor rank the engine supports.
const MaxRank = 4

// Shape represents the dimensions of a tensor.
// A nil or empty Shape is a rank-0 scalar.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the rank is supported and no dimension is negative.
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return errors.Wrapf(ErrInvalidShape, "rank %d exceeds maximum rank %d", len(s), MaxRank)
	}
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension %d is %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// NormalizeAxis resolves a possibly negative axis against the shape's rank.
// -1 names the innermost axis. A rank-0 shape has no valid axis.
func (s Shape) NormalizeAxis(axis int) (int, error) {
	rank := len(s)
	actual := axis
	if actual < 0 {
		actual += rank
	}
	if actual < 0 || actual >= rank {
		return 0, errors.Wrapf(ErrInvalidAxis, "axis %d for shape %v", axis, s)
	}
	return actual, nil
}

// MustNormalizeAxis is NormalizeAxis that panics on an invalid axis.
func (s Shape) MustNormalizeAxis(axis int) int {
	actual, err := s.NormalizeAxis(axis)
	if err != nil {
		panic(err)
	}
	return actual
}

// RemoveAxis returns the shape with the given (normalized) axis dropped.
func (s Shape) RemoveAxis(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// SplitAt views the shape as [outer, dim, inner] around the given (normalized) axis.
// outer is the product of the leading dims and inner the product of the trailing ones.
func (s Shape) SplitAt(axis int) (outer, dim, inner int) {
	return s[:axis].NumElements(), s[axis], s[axis+1:].NumElements()
}
