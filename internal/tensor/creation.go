package tensor

// RandSource is a source of random numbers for filling tensors.
// *rand.Rand from math/rand and golang.org/x/exp/rand both satisfy it.
type RandSource interface {
	Float64() float64
	NormFloat64() float64
}

// Zeros creates a raw tensor filled with zeros.
//
// Example:
//
//	r := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *RawTensor {
	// Data is already zero-initialized by make()
	return MustNewRaw(shape)
}

// Ones creates a raw tensor filled with ones.
func Ones(shape Shape) *RawTensor {
	return Full(shape, 1)
}

// Full creates a raw tensor filled with a specific value.
//
// Example:
//
//	r := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float32) *RawTensor {
	r := MustNewRaw(shape)
	for i := range r.data {
		r.data[i] = value
	}
	return r
}

// Randn creates a raw tensor with values from the standard normal distribution
// drawn from src.
func Randn(shape Shape, src RandSource) *RawTensor {
	r := MustNewRaw(shape)
	for i := range r.data {
		r.data[i] = float32(src.NormFloat64())
	}
	return r
}

// Rand creates a raw tensor with values uniformly distributed in [0, 1)
// drawn from src.
func Rand(shape Shape, src RandSource) *RawTensor {
	r := MustNewRaw(shape)
	for i := range r.data {
		r.data[i] = float32(src.Float64())
	}
	return r
}
