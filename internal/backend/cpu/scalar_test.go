package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtape/internal/tensor"
)

func TestScalarOps(t *testing.T) {
	backend := New()
	x, err := tensor.FromData([]float32{1.0, 2.0, -3.0}, tensor.Shape{3})
	require.NoError(t, err)

	assert.Equal(t, []float32{1.5, 2.5, -2.5}, backend.AddScalar(x, 0.5).Data())
	assert.Equal(t, []float32{0.5, 1.5, -3.5}, backend.SubScalar(x, 0.5).Data())
	assert.Equal(t, []float32{0.5, 1.0, -1.5}, backend.MulScalar(x, 0.5).Data())
	assert.Equal(t, []float32{0.5, 1.0, -1.5}, backend.DivScalar(x, 2.0).Data())

	assert.Equal(t, []float32{1.0, 2.0, -3.0}, x.Data(), "input must be left untouched")
}

func TestScalarOps_NewIdentity(t *testing.T) {
	backend := New()
	x := tensor.Ones(tensor.Shape{2, 2})
	y := backend.AddScalar(x, 1)

	assert.NotEqual(t, x.ID(), y.ID())
	assert.Equal(t, x.Shape(), y.Shape())
}

func TestDivScalar_ByZero(t *testing.T) {
	backend := New()
	x, err := tensor.FromData([]float32{1, -1, 0}, tensor.Shape{3})
	require.NoError(t, err)

	out := backend.DivScalar(x, 0).Data()
	assert.True(t, math.IsInf(float64(out[0]), 1))
	assert.True(t, math.IsInf(float64(out[1]), -1))
	assert.True(t, math.IsNaN(float64(out[2])))
}

func TestExp(t *testing.T) {
	backend := New()
	x, err := tensor.FromData([]float32{0, 1, -1}, tensor.Shape{3})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{1, 2.7182817, 0.36787945}, backend.Exp(x).Data(), 1e-6)
}

func TestAddAssign(t *testing.T) {
	backend := New()
	dst := []float32{1, 2, 3}
	backend.AddAssign(dst, []float32{0.5, 0.5, 0.5})
	assert.Equal(t, []float32{1.5, 2.5, 3.5}, dst)

	assert.Panics(t, func() { backend.AddAssign(dst, []float32{1}) })
}
