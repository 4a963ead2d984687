package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/backend/cpu"
	"github.com/born-ml/gradtape/internal/tensor"
)

// SelectOp represents a select (gather) along one axis.
//
// Forward: output = Select(input, axis, indices)
//
// Backward:
//
//	Scatter-add grad_output into a zero buffer shaped like the input at the
//	positions the forward pass copied from, then add it to grad_input.
//	Positions selected several times accumulate every contribution; positions
//	never selected receive nothing.
//
// Example:
//
//	input:   [10, 20, 30, 40]
//	indices: [2, 0, 2]
//	output:  [30, 10, 30]
//	grad_output: [a, b, c]
//	grad_input:  [b, 0, a+c, 0]
type SelectOp struct {
	input   tensor.Phantom
	output  tensor.Phantom
	axis    int            // normalized axis of input
	indices tensor.Indices // owned copy, already bounds-checked
}

// NewSelectOp creates a new SelectOp. indices must be owned by the op.
func NewSelectOp(input, output tensor.Phantom, axis int, indices tensor.Indices) *SelectOp {
	return &SelectOp{
		input:   input,
		output:  output,
		axis:    axis,
		indices: indices,
	}
}

// Name returns the operation name.
func (op *SelectOp) Name() string {
	return "select"
}

// Backward scatter-adds the output gradient back into the input gradient.
func (op *SelectOp) Backward(grads *autodiff.Gradients) {
	inputGrad, outputGrad := grads.MutAndRef(op.input, op.output)

	scratch := make([]float32, len(inputGrad))
	backend.SelectAdd(scratch, outputGrad, op.input.Shape, op.axis, op.indices)
	backend.AddAssign(inputGrad, scratch)
}

// Select replaces axis of t with the shape of indices.
//
// With input shape S and normalized axis a, indices must be shaped either
// S[:a] (one position per leading coordinate; the axis is consumed and the
// rank drops by one) or S[:a]+[Z] (the axis is resized to Z). The same input
// element may be selected any number of times.
//
// Panics with tensor.ErrInvalidAxis, tensor.ErrShapeMismatch or
// tensor.ErrIndexOutOfRange before anything is recorded if the request is
// malformed.
//
// Example:
//
//	t := autodiff.MustFromSlice([]float32{1, 2, 3, -1, -2, -3}, tensor.Shape{2, 3})
//	ops.Select(t, -1, tensor.IndexList(1, 2)).Data() // [2, -3]
func Select[H autodiff.Tape](t *autodiff.Tensor[H], axis int, indices tensor.Indices) *autodiff.Tensor[H] {
	shape := t.Shape()
	actual, err := shape.NormalizeAxis(axis)
	if err != nil {
		panic(errors.Wrap(err, "select"))
	}
	if _, _, err := cpu.SelectShape(shape, actual, indices); err != nil {
		panic(errors.Wrap(err, "select"))
	}
	if err := indices.CheckBounds(shape[actual]); err != nil {
		panic(errors.Wrap(err, "select"))
	}

	tape := t.TakeTape()
	result := backend.Select(t.Raw(), actual, indices)

	if tape.IsTracking() {
		tape.Record(NewSelectOp(t.Phantom(), result.Phantom(), actual, indices.Clone()))
	}
	return autodiff.WithTape(result, tape)
}
