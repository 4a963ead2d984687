package ops

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// ScalarKind selects the arithmetic of a ScalarOp.
type ScalarKind int

// Scalar arithmetic kinds.
const (
	ScalarAdd ScalarKind = iota
	ScalarSub
	ScalarMul
	ScalarDiv
)

// String returns the operation name of the kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarAdd:
		return "add_scalar"
	case ScalarSub:
		return "sub_scalar"
	case ScalarMul:
		return "mul_scalar"
	case ScalarDiv:
		return "div_scalar"
	default:
		return fmt.Sprintf("scalar(%d)", int(k))
	}
}

// ScalarOp is the backward record of x (+|-|*|/) c.
//
// Backward, per element with upstream gradient g:
//
//	add, sub: g        (transported unchanged)
//	mul:      c * g
//	div:      g / c
type ScalarOp struct {
	kind   ScalarKind
	value  float32
	input  tensor.Phantom
	output tensor.Phantom
}

// NewScalarOp creates a new ScalarOp.
func NewScalarOp(kind ScalarKind, value float32, input, output tensor.Phantom) *ScalarOp {
	return &ScalarOp{
		kind:   kind,
		value:  value,
		input:  input,
		output: output,
	}
}

// Name returns the operation name.
func (op *ScalarOp) Name() string {
	return op.kind.String()
}

// Backward computes the local gradient into a scratch buffer and adds it to
// the input's gradient. For add/sub the scratch is overwritten with the
// upstream gradient as is, never summed with it.
func (op *ScalarOp) Backward(grads *autodiff.Gradients) {
	inputGrad, outputGrad := grads.MutAndRef(op.input, op.output)

	local := make([]float32, len(outputGrad))
	switch op.kind {
	case ScalarAdd, ScalarSub:
		copy(local, outputGrad)
	case ScalarMul:
		for i, g := range outputGrad {
			local[i] = op.value * g
		}
	case ScalarDiv:
		for i, g := range outputGrad {
			local[i] = g / op.value
		}
	}

	backend.AddAssign(inputGrad, local)
}

// AddScalar adds value to every element of t.
//
// Example:
//
//	t := autodiff.MustFromSlice([]float32{1.0, 2.0, -3.0}, tensor.Shape{3})
//	ops.AddScalar(t, 0.5).Data() // [1.5, 2.5, -2.5]
func AddScalar[H autodiff.Tape](t *autodiff.Tensor[H], value float32) *autodiff.Tensor[H] {
	return scalar(t, ScalarAdd, value)
}

// SubScalar subtracts value from every element of t.
//
// Example:
//
//	t := autodiff.MustFromSlice([]float32{1.0, 2.0, -3.0}, tensor.Shape{3})
//	ops.SubScalar(t, 0.5).Data() // [0.5, 1.5, -3.5]
func SubScalar[H autodiff.Tape](t *autodiff.Tensor[H], value float32) *autodiff.Tensor[H] {
	return scalar(t, ScalarSub, value)
}

// MulScalar multiplies every element of t by value.
func MulScalar[H autodiff.Tape](t *autodiff.Tensor[H], value float32) *autodiff.Tensor[H] {
	return scalar(t, ScalarMul, value)
}

// DivScalar divides every element of t by value.
// A zero divisor yields IEEE infinities or NaN; it is not reported as an error.
//
// Example:
//
//	t := autodiff.MustFromSlice([]float32{1.0, 2.0, -3.0}, tensor.Shape{3})
//	ops.DivScalar(t, 2).Data() // [0.5, 1.0, -1.5]
func DivScalar[H autodiff.Tape](t *autodiff.Tensor[H], value float32) *autodiff.Tensor[H] {
	return scalar(t, ScalarDiv, value)
}

func scalar[H autodiff.Tape](t *autodiff.Tensor[H], kind ScalarKind, value float32) *autodiff.Tensor[H] {
	tape := t.TakeTape()

	var result *tensor.RawTensor
	switch kind {
	case ScalarAdd:
		result = backend.AddScalar(t.Raw(), value)
	case ScalarSub:
		result = backend.SubScalar(t.Raw(), value)
	case ScalarMul:
		result = backend.MulScalar(t.Raw(), value)
	case ScalarDiv:
		result = backend.DivScalar(t.Raw(), value)
	default:
		panic(fmt.Sprintf("scalar: unknown kind %v", kind))
	}

	if tape.IsTracking() {
		tape.Record(NewScalarOp(kind, value, t.Phantom(), result.Phantom()))
	}
	return autodiff.WithTape(result, tape)
}
