package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct {
	input  tensor.Phantom
	output tensor.Phantom
	values []float32 // copy of exp(x)
}

// NewExpOp creates a new ExpOp. values is owned by the op.
func NewExpOp(input, output tensor.Phantom, values []float32) *ExpOp {
	return &ExpOp{
		input:  input,
		output: output,
		values: values,
	}
}

// Name returns the operation name.
func (op *ExpOp) Name() string {
	return "exp"
}

// Backward computes input gradient for exp.
func (op *ExpOp) Backward(grads *autodiff.Gradients) {
	inputGrad, outputGrad := grads.MutAndRef(op.input, op.output)
	for i, g := range outputGrad {
		inputGrad[i] += g * op.values[i]
	}
}

// Exp computes exp(x) element-wise.
func Exp[H autodiff.Tape](t *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	tape := t.TakeTape()
	result := backend.Exp(t.Raw())

	if tape.IsTracking() {
		values := append([]float32(nil), result.Data()...)
		tape.Record(NewExpOp(t.Phantom(), result.Phantom(), values))
	}
	return autodiff.WithTape(result, tape)
}
