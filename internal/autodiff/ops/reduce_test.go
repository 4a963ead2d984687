package ops

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

func TestMeanDim_ValidShapes(t *testing.T) {
	assert.Equal(t, 0, MeanDim(autodiff.Zeros(tensor.Shape{5}), -1).Shape().Rank())

	assert.Equal(t, tensor.Shape{3}, MeanDim(autodiff.Zeros(tensor.Shape{5, 3}), 0).Shape())
	assert.Equal(t, tensor.Shape{5}, MeanDim(autodiff.Zeros(tensor.Shape{5, 3}), -1).Shape())

	assert.Equal(t, tensor.Shape{5, 3}, MeanDim(autodiff.Zeros(tensor.Shape{7, 5, 3}), 0).Shape())
	assert.Equal(t, tensor.Shape{7, 3}, MeanDim(autodiff.Zeros(tensor.Shape{7, 5, 3}), 1).Shape())
	assert.Equal(t, tensor.Shape{7, 5}, MeanDim(autodiff.Zeros(tensor.Shape{7, 5, 3}), -1).Shape())

	x := tensor.Shape{9, 7, 5, 3}
	assert.Equal(t, tensor.Shape{7, 5, 3}, MeanDim(autodiff.Zeros(x), 0).Shape())
	assert.Equal(t, tensor.Shape{9, 5, 3}, MeanDim(autodiff.Zeros(x), 1).Shape())
	assert.Equal(t, tensor.Shape{9, 7, 3}, MeanDim(autodiff.Zeros(x), 2).Shape())
	assert.Equal(t, tensor.Shape{9, 7, 5}, MeanDim(autodiff.Zeros(x), -1).Shape())
}

func TestMeanDim_LastAxis(t *testing.T) {
	x := autodiff.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	r := MeanDim(x, -1)
	assert.Equal(t, []float32{2.0, 5.0}, r.Data())
}

func TestMeanDim_Axis0_2D(t *testing.T) {
	x := autodiff.MustFromSlice([]float32{1, 2, 3, -2, 4, -6}, tensor.Shape{2, 3})
	r := MeanDim(autodiff.Trace(x), 0)
	assert.Equal(t, []float32{-0.5, 3.0, -1.5}, r.Data())

	grads := autodiff.Backward(Mean(Exp(r)))
	row := []float32{0.10108845, 3.3475895, 0.037188362}
	assert.InDeltaSlice(t, append(row, row...), grads.Gradient(x).Data(), delta)
}

func TestMeanDim_Axis1_2D(t *testing.T) {
	x := autodiff.MustFromSlice([]float32{1, 2, 3, -2, 4, -6}, tensor.Shape{2, 3})
	r := MeanDim(autodiff.Trace(x), -1)
	assert.InDeltaSlice(t, []float32{2.0, -4.0 / 3.0}, r.Data(), delta)

	grads := autodiff.Backward(Mean(Exp(r)))
	assert.InDeltaSlice(t, []float32{
		1.2315093, 1.2315093, 1.2315093,
		0.043932855, 0.043932855, 0.043932855,
	}, grads.Gradient(x).Data(), delta)
}

// A uniform upstream gradient g reaches every contributing element as g/N.
func TestMeanDim_UniformGradient(t *testing.T) {
	shape := tensor.Shape{2, 4, 3}
	for axis, n := range map[int]float32{0: 2, 1: 4, 2: 3} {
		x := autodiff.Ones(shape)
		r := MeanDim(autodiff.Trace(x), axis)

		// Sum gives every output element an upstream gradient of g = 5.
		grads := autodiff.Backward(Sum(MulScalar(r, 5)))
		for _, v := range grads.Gradient(x).Data() {
			assert.InDelta(t, 5/n, v, delta, "axis %d", axis)
		}
	}
}

func TestMeanDim_RecordsSumThenDiv(t *testing.T) {
	r := MeanDim(autodiff.Trace(autodiff.Zeros(tensor.Shape{4, 2})), 0)
	assert.Equal(t, []string{"sum_dim", "div_scalar"}, r.Tape().OpNames())
}

func TestMeanDim_InvalidAxis(t *testing.T) {
	assertPanicsWith(t, tensor.ErrInvalidAxis, func() { MeanDim(autodiff.Zeros(tensor.Shape{2, 3}), 2) })
	assertPanicsWith(t, tensor.ErrInvalidAxis, func() { MeanDim(autodiff.Zeros(tensor.Shape{2, 3}), -3) })
	assertPanicsWith(t, tensor.ErrInvalidAxis, func() { MeanDim(autodiff.Full(tensor.Shape{}, 1), -1) })
}

func TestSumDim_Backward4D(t *testing.T) {
	x := autodiff.Ones(tensor.Shape{2, 3, 4, 5})
	r := SumDim(autodiff.Trace(x), 2)
	require.Equal(t, tensor.Shape{2, 3, 5}, r.Shape())
	for _, v := range r.Data() {
		assert.Equal(t, float32(4), v)
	}

	grads := autodiff.Backward(Sum(r))
	for _, v := range grads.Gradient(x).Data() {
		assert.Equal(t, float32(1), v)
	}
}

func TestMean_Full(t *testing.T) {
	x := autodiff.MustFromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	r := Mean(autodiff.Trace(x))
	assert.Equal(t, float32(2.5), r.Item())

	grads := autodiff.Backward(r)
	assert.Equal(t, []float32{0.25, 0.25, 0.25, 0.25}, grads.Gradient(x).Data())
}

func TestMean_ZeroSizeIsNaN(t *testing.T) {
	x := autodiff.Zeros(tensor.Shape{0, 3})

	assert.True(t, math.IsNaN(float64(Mean(x).Item())))

	r := MeanDim(x, 0)
	require.Equal(t, tensor.Shape{3}, r.Shape())
	for _, v := range r.Data() {
		assert.True(t, math.IsNaN(float64(v)))
	}

	// an empty result of a non-empty reduction is still well defined
	assert.Equal(t, tensor.Shape{0}, MeanDim(x, 1).Shape())
}

// assertPanicsWith checks that f panics with an error wrapping target.
func assertPanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	f()
}
