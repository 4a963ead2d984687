package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// SumDimOp represents a reduction sum along an axis: output = sum(x, axis).
//
// Backward:
//
//	grad_x = broadcast(grad_y, x.shape) along the removed axis
//
// Each input element contributes 1.0 to exactly one output element, so the
// upstream gradient is copied back to every element that was summed.
type SumDimOp struct {
	input  tensor.Phantom
	output tensor.Phantom
	axis   int // normalized axis of input
}

// NewSumDimOp creates a new SumDimOp. axis must be normalized.
func NewSumDimOp(input, output tensor.Phantom, axis int) *SumDimOp {
	return &SumDimOp{
		input:  input,
		output: output,
		axis:   axis,
	}
}

// Name returns the operation name.
func (op *SumDimOp) Name() string {
	return "sum_dim"
}

// Backward broadcasts the output gradient into the input gradient.
func (op *SumDimOp) Backward(grads *autodiff.Gradients) {
	inputGrad, outputGrad := grads.MutAndRef(op.input, op.output)
	backend.BroadcastAddDim(inputGrad, outputGrad, op.input.Shape, op.axis)
}

// SumDim sums t along axis and removes it. Negative axes count from the
// innermost one. Panics with tensor.ErrInvalidAxis if t has no such axis.
//
// Example:
//
//	t := autodiff.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	ops.SumDim(t, -1).Data() // [6, 15]
func SumDim[H autodiff.Tape](t *autodiff.Tensor[H], axis int) *autodiff.Tensor[H] {
	actual, err := t.Shape().NormalizeAxis(axis)
	if err != nil {
		panic(errors.Wrap(err, "sumdim"))
	}

	tape := t.TakeTape()
	result := backend.SumDim(t.Raw(), actual)

	if tape.IsTracking() {
		tape.Record(NewSumDimOp(t.Phantom(), result.Phantom(), actual))
	}
	return autodiff.WithTape(result, tape)
}
