package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

func TestInertOps_RecordNothing(t *testing.T) {
	x := autodiff.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	y := Mean(Exp(Select(MeanDim(MulScalar(x, 2), 0), 0, tensor.IndexList(2, 0))))
	assert.False(t, y.IsTracking())
	assert.InDelta(t, 4125.7485, y.Item(), 0.01)

	// Inert tensors are never moved and can feed many operations.
	assert.False(t, x.IsMoved())
	assert.NotPanics(t, func() { AddScalar(x, 1) })
	assert.NotPanics(t, func() { SumDim(x, 1) })
}

func TestTrackedOps_RecordOnePerOp(t *testing.T) {
	x := autodiff.Trace(autodiff.Ones(tensor.Shape{2, 3}))

	y := Mean(Exp(Select(MeanDim(MulScalar(x, 2), 0), 0, tensor.IndexList(2, 0))))
	require.True(t, y.IsTracking())
	assert.Equal(t, []string{
		"mul_scalar",
		"sum_dim", "div_scalar",
		"select",
		"exp",
		"sum", "div_scalar",
	}, y.Tape().OpNames())
}

func TestTrackedOps_ShareTape(t *testing.T) {
	tape := autodiff.NewGradientTape()
	x := autodiff.TraceWith(autodiff.Zeros(tensor.Shape{3}), tape)

	y := Sum(AddScalar(x, 1))
	assert.Same(t, tape, y.Tape())
	assert.Equal(t, 2, tape.NumOps())
}

func TestMovedTensor_Panics(t *testing.T) {
	x := autodiff.Trace(autodiff.Zeros(tensor.Shape{3}))
	_ = AddScalar(x, 1)

	assert.True(t, x.IsMoved())
	assertPanicsWith(t, autodiff.ErrTensorMoved, func() { MulScalar(x, 2) })
	assertPanicsWith(t, autodiff.ErrTensorMoved, func() { MeanDim(x, 0) })
	assertPanicsWith(t, autodiff.ErrTensorMoved, func() { Select(x, 0, tensor.Index(0)) })
}

func TestBackward_DrainsCallerTape(t *testing.T) {
	x := autodiff.MustFromSlice([]float32{1, 2}, tensor.Shape{2})
	tape := autodiff.NewGradientTape()

	a := Sum(MulScalar(autodiff.TraceWith(x, tape), 3))
	grads := autodiff.Backward(a)
	assert.Equal(t, []float32{3, 3}, grads.Gradient(x).Data())
	assert.Equal(t, 0, tape.NumOps())
}
