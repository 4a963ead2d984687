package autodiff

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Backward runs the backward pass from a scalar tracking tensor.
//
// Algorithm:
//  1. Seed the gradient of t with 1.0
//  2. Pop and execute the tape's records, last recorded first
//  3. Each record adds its input's gradient contribution into the store
//
// Running records in reverse registration order processes every tensor's
// full incoming gradient before the record that produced it runs, because the
// tape was appended by a single sequential forward pass.
//
// t must be rank 0. Its tape is consumed: t can't be used afterwards.
//
// Example:
//
//	x := autodiff.MustFromSlice([]float32{1, 2, -3}, tensor.Shape{3})
//	loss := ops.Sum(ops.MulScalar(autodiff.Trace(x), 4))
//	grads := autodiff.Backward(loss)
//	grads.Gradient(x).Data() // [4, 4, 4]
func Backward(t *Tensor[*GradientTape]) *Gradients {
	if t.Shape().Rank() != 0 {
		panic(fmt.Sprintf("backward: expected a rank-0 tensor, got shape %v", t.Shape()))
	}

	tape := t.TakeTape()
	grads := NewGradients()
	grads.Mut(t)[0] = 1

	numOps := tape.NumOps()
	tape.Backward(grads)

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{
			"tape":  tape.ID(),
			"ops":   numOps,
			"grads": grads.Len(),
		}).Debug("backward pass complete")
	}

	return grads
}
