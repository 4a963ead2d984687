package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Indices is a (possibly nested) collection of positions used by select.
// Its shape decides how the selected axis is replaced: a shape equal to the
// leading dims consumes the axis, one extra trailing dim resizes it.
type Indices struct {
	shape Shape
	data  []int
}

// NewIndices creates an index collection that copies data.
func NewIndices(data []int, shape ...int) (Indices, error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return Indices{}, err
	}
	if s.NumElements() != len(data) {
		return Indices{}, errors.Wrapf(ErrShapeMismatch, "index shape %v requires %d elements, but got %d",
			s, s.NumElements(), len(data))
	}
	return Indices{shape: s.Clone(), data: append([]int(nil), data...)}, nil
}

// MustIndices is NewIndices that panics on a mismatched shape.
func MustIndices(data []int, shape ...int) Indices {
	idx, err := NewIndices(data, shape...)
	if err != nil {
		panic(err)
	}
	return idx
}

// Index is a single position: selecting it along axis 0 consumes the axis.
func Index(i int) Indices {
	return Indices{shape: Shape{}, data: []int{i}}
}

// IndexList is a flat list of positions.
func IndexList(idx ...int) Indices {
	return Indices{shape: Shape{len(idx)}, data: append([]int(nil), idx...)}
}

// Shape returns the shape of the index collection.
func (ix Indices) Shape() Shape {
	return ix.shape
}

// Data returns the flattened row-major positions.
func (ix Indices) Data() []int {
	return ix.data
}

// Len returns the number of positions.
func (ix Indices) Len() int {
	return len(ix.data)
}

// CheckBounds verifies every position lies in [0, size).
func (ix Indices) CheckBounds(size int) error {
	for i, v := range ix.data {
		if v < 0 || v >= size {
			return errors.Wrapf(ErrIndexOutOfRange, "position %d holds index %d, axis size is %d", i, v, size)
		}
	}
	return nil
}

// String returns a human-readable representation of the indices.
func (ix Indices) String() string {
	return fmt.Sprintf("Indices%v%v", ix.shape, ix.data)
}

// Clone returns a deep copy of the indices.
func (ix Indices) Clone() Indices {
	return Indices{shape: ix.shape.Clone(), data: append([]int(nil), ix.data...)}
}
