package autodiff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/tensor"
)

// ErrTensorMoved reports reuse of a tracking tensor whose tape was already
// taken by an operation or by Backward.
var ErrTensorMoved = errors.New("tensor tape already moved")

// Tensor is a shaped float32 tensor in tape mode H.
//
// A Tensor[NoTape] is inert: operations on it only compute the forward
// result. A Tensor[*GradientTape] is tracking: each operation moves the tape
// out of its input, records how to differentiate itself and hands the tape to
// its result. A tracking tensor can therefore feed only one operation.
//
// Example:
//
//	x := autodiff.MustFromSlice([]float32{1, 2, 3}, tensor.Shape{3})
//	y := ops.Mean(ops.MulScalar(autodiff.Trace(x), 2))
//	grads := autodiff.Backward(y)
//	grads.Gradient(x) // [2/3, 2/3, 2/3]
type Tensor[H Tape] struct {
	raw   *tensor.RawTensor
	tape  H
	moved bool
}

// WithTape bundles raw storage with a tape.
// Used by operations to attach the (extended) tape to their result.
func WithTape[H Tape](raw *tensor.RawTensor, tape H) *Tensor[H] {
	return &Tensor[H]{raw: raw, tape: tape}
}

// FromRaw wraps raw storage in an inert tensor.
func FromRaw(raw *tensor.RawTensor) *Tensor[NoTape] {
	return &Tensor[NoTape]{raw: raw}
}

// FromSlice creates an inert tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, shape tensor.Shape) (*Tensor[NoTape], error) {
	raw, err := tensor.FromData(data, shape)
	if err != nil {
		return nil, errors.Wrap(err, "from slice")
	}
	return FromRaw(raw), nil
}

// MustFromSlice is FromSlice that panics on a shape mismatch.
func MustFromSlice(data []float32, shape tensor.Shape) *Tensor[NoTape] {
	t, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Zeros creates an inert tensor filled with zeros.
func Zeros(shape tensor.Shape) *Tensor[NoTape] {
	return FromRaw(tensor.Zeros(shape))
}

// Ones creates an inert tensor filled with ones.
func Ones(shape tensor.Shape) *Tensor[NoTape] {
	return FromRaw(tensor.Ones(shape))
}

// Full creates an inert tensor filled with value.
func Full(shape tensor.Shape, value float32) *Tensor[NoTape] {
	return FromRaw(tensor.Full(shape, value))
}

// Randn creates an inert tensor with standard normal values drawn from src.
func Randn(shape tensor.Shape, src tensor.RandSource) *Tensor[NoTape] {
	return FromRaw(tensor.Randn(shape, src))
}

// Rand creates an inert tensor with uniform [0, 1) values drawn from src.
func Rand(shape tensor.Shape, src tensor.RandSource) *Tensor[NoTape] {
	return FromRaw(tensor.Rand(shape, src))
}

// Trace starts recording: it returns a tracking tensor with the same identity
// and storage as t and a fresh tape. Gradients computed from the result are
// reported under t's identity.
func Trace(t *Tensor[NoTape]) *Tensor[*GradientTape] {
	return TraceWith(t, NewGradientTape())
}

// TraceWith is Trace with a caller-provided tape.
func TraceWith(t *Tensor[NoTape], tape *GradientTape) *Tensor[*GradientTape] {
	return &Tensor[*GradientTape]{raw: t.raw, tape: tape}
}

// Raw returns the underlying storage.
func (t *Tensor[H]) Raw() *tensor.RawTensor {
	return t.raw
}

// ID returns the tensor's identity.
func (t *Tensor[H]) ID() tensor.ID {
	return t.raw.ID()
}

// Shape returns the tensor's shape.
func (t *Tensor[H]) Shape() tensor.Shape {
	return t.raw.Shape()
}

// Phantom returns the tensor's identity and shape.
func (t *Tensor[H]) Phantom() tensor.Phantom {
	return t.raw.Phantom()
}

// Data returns the tensor's values, whatever its tape mode.
// The slice directly accesses the underlying memory (zero-copy).
func (t *Tensor[H]) Data() []float32 {
	return t.raw.Data()
}

// Item returns the value of a rank-0 tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[H]) Item() float32 {
	if t.Shape().Rank() != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.Shape()))
	}
	return t.raw.Data()[0]
}

// At returns the element at the given coordinates.
func (t *Tensor[H]) At(indices ...int) float32 {
	return t.raw.At(indices...)
}

// Detach returns an inert view of the same identity and storage.
func (t *Tensor[H]) Detach() *Tensor[NoTape] {
	return FromRaw(t.raw)
}

// IsTracking reports whether this tensor's operations are recorded.
func (t *Tensor[H]) IsTracking() bool {
	return t.tape.IsTracking()
}

// Tape returns the tensor's tape without moving it.
func (t *Tensor[H]) Tape() H {
	return t.tape
}

// IsMoved reports whether the tape of this tracking tensor was taken.
func (t *Tensor[H]) IsMoved() bool {
	return t.moved
}

// TakeTape detaches the tape from t.
//
// For a tracking tensor the tape is moved out and t can't feed another
// operation; doing so panics with ErrTensorMoved. Inert tensors are unaffected.
func (t *Tensor[H]) TakeTape() H {
	if t.moved {
		panic(errors.Wrapf(ErrTensorMoved, "tensor %d", t.ID()))
	}
	tape := t.tape
	if tape.IsTracking() {
		var zero H
		t.tape = zero
		t.moved = true
	}
	return tape
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[H]) String() string {
	mode := "inert"
	if t.IsTracking() {
		mode = "tracking"
	}
	return fmt.Sprintf("Tensor#%d%v (%s)", t.ID(), t.Shape(), mode)
}
