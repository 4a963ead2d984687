package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/autodiff"
)

// MeanDim averages t along axis and removes it.
//
// It is SumDim followed by DivScalar with the axis size, so its gradient is
// the upstream gradient broadcast back along the axis and scaled by 1/N.
// Negative axes count from the innermost one. Averaging over a zero-size
// axis divides by zero and yields NaN, like DivScalar.
//
// Example:
//
//	t := autodiff.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	ops.MeanDim(t, -1).Data() // [2, 5]
func MeanDim[H autodiff.Tape](t *autodiff.Tensor[H], axis int) *autodiff.Tensor[H] {
	actual, err := t.Shape().NormalizeAxis(axis)
	if err != nil {
		panic(errors.Wrap(err, "meandim"))
	}
	n := t.Shape()[actual]

	return DivScalar(SumDim(t, actual), float32(n))
}
