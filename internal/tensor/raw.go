// Package tensor provides shapes, dense float32 storage and tensor identities.
package tensor

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ID is a stable per-tensor identity. Gradients are keyed by ID, never by
// value or address, so identities survive tapes being moved between tensors.
type ID uint64

var lastID atomic.Uint64

// NextID returns a fresh, process-wide unique tensor ID.
func NextID() ID {
	return ID(lastID.Add(1))
}

// Phantom is the identity and shape of a tensor without its data.
// Backward records capture phantoms to address gradients.
type Phantom struct {
	ID    ID
	Shape Shape
}

// HasPhantom is implemented by anything that can name a tensor in a gradient store.
type HasPhantom interface {
	Phantom() Phantom
}

// Phantom returns the phantom itself, so a Phantom can be used wherever a
// HasPhantom is expected.
func (p Phantom) Phantom() Phantom {
	return p
}

// RawTensor is the low-level tensor representation: an identity, a shape
// and a dense row-major float32 buffer of exactly Shape.NumElements() values.
type RawTensor struct {
	id     ID
	shape  Shape
	stride []int
	data   []float32
}

// NewRaw creates a zero-filled RawTensor with a fresh ID.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &RawTensor{
		id:     NextID(),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float32, shape.NumElements()),
	}, nil
}

// MustNewRaw is NewRaw that panics on an invalid shape.
func MustNewRaw(shape Shape) *RawTensor {
	r, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return r
}

// FromData creates a RawTensor that copies data.
func FromData(data []float32, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}

	r, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(r.data, data)
	return r, nil
}

// ID returns the tensor's identity.
func (r *RawTensor) ID() ID {
	return r.id
}

// Shape returns a copy of the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape.Clone()
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Phantom returns the tensor's identity and a copy of its shape.
// Backward records own the phantoms they capture.
func (r *RawTensor) Phantom() Phantom {
	return Phantom{ID: r.id, Shape: r.shape.Clone()}
}

// Data returns the underlying buffer (zero-copy).
//
// WARNING: the engine treats storage as immutable once an operation has
// produced it. Writing through this slice after the tensor has been fed to a
// tracked operation invalidates the recorded backward pass.
func (r *RawTensor) Data() []float32 {
	return r.data
}

// Offset converts coordinates into a flat buffer offset.
// Panics if the coordinates don't address an element.
func (r *RawTensor) Offset(indices ...int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(errors.Wrapf(ErrIndexOutOfRange, "index %d for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return offset
}

// At returns the element at the given coordinates.
func (r *RawTensor) At(indices ...int) float32 {
	return r.data[r.Offset(indices...)]
}

// Clone returns a deep copy of the tensor with a fresh ID.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float32, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		id:     NextID(),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		data:   data,
	}
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor#%d%v", r.id, r.shape)
}
