package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// SumOp represents a full reduction to a scalar.
// Backward adds the scalar upstream gradient to every input element.
type SumOp struct {
	input  tensor.Phantom
	output tensor.Phantom
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output tensor.Phantom) *SumOp {
	return &SumOp{input: input, output: output}
}

// Name returns the operation name.
func (op *SumOp) Name() string {
	return "sum"
}

// Backward broadcasts the scalar gradient to the input.
func (op *SumOp) Backward(grads *autodiff.Gradients) {
	inputGrad, outputGrad := grads.MutAndRef(op.input, op.output)
	g := outputGrad[0]
	for i := range inputGrad {
		inputGrad[i] += g
	}
}

// Sum adds all elements of t into a rank-0 tensor.
func Sum[H autodiff.Tape](t *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	tape := t.TakeTape()
	result := backend.Sum(t.Raw())

	if tape.IsTracking() {
		tape.Record(NewSumOp(t.Phantom(), result.Phantom()))
	}
	return autodiff.WithTape(result, tape)
}

// Mean averages all elements of t into a rank-0 tensor.
// It is Sum followed by DivScalar with the element count. The mean of an
// empty tensor divides by zero and yields NaN, like DivScalar.
func Mean[H autodiff.Tape](t *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	n := t.Shape().NumElements()
	return DivScalar(Sum(t), float32(n))
}
