package cpu

import (
	"github.com/born-ml/gradtape/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return mapScalar("addScalar", x, func(v float32) float32 { return v + scalar })
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return mapScalar("subScalar", x, func(v float32) float32 { return v - scalar })
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return mapScalar("mulScalar", x, func(v float32) float32 { return v * scalar })
}

// DivScalar divides each element of the tensor by a scalar value.
// Dividing by zero follows IEEE-754 and yields ±Inf or NaN.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return mapScalar("divScalar", x, func(v float32) float32 { return v / scalar })
}

func mapScalar(op string, x *tensor.RawTensor, f func(float32) float32) *tensor.RawTensor {
	result := newResult(op, x.Shape())
	xData := x.Data()
	resultData := result.Data()

	for i := range resultData {
		resultData[i] = f(xData[i])
	}
	return result
}
