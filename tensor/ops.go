// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gradtape/internal/autodiff/ops"
)

// AddScalar returns t + c element-wise.
func AddScalar[H Tape](t *Tensor[H], c float32) *Tensor[H] {
	return ops.AddScalar(t, c)
}

// SubScalar returns t - c element-wise.
func SubScalar[H Tape](t *Tensor[H], c float32) *Tensor[H] {
	return ops.SubScalar(t, c)
}

// MulScalar returns t * c element-wise.
func MulScalar[H Tape](t *Tensor[H], c float32) *Tensor[H] {
	return ops.MulScalar(t, c)
}

// DivScalar returns t / c element-wise. Division by zero yields IEEE
// infinities or NaN.
func DivScalar[H Tape](t *Tensor[H], c float32) *Tensor[H] {
	return ops.DivScalar(t, c)
}

// SumDim sums over axis and removes it.
func SumDim[H Tape](t *Tensor[H], axis int) *Tensor[H] {
	return ops.SumDim(t, axis)
}

// MeanDim averages over axis and removes it.
//
// Example:
//
//	x := tensor.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	tensor.MeanDim(x, -1).Data() // [2, 5]
func MeanDim[H Tape](t *Tensor[H], axis int) *Tensor[H] {
	return ops.MeanDim(t, axis)
}

// Sum reduces all elements to a scalar.
func Sum[H Tape](t *Tensor[H]) *Tensor[H] {
	return ops.Sum(t)
}

// Mean averages all elements into a scalar.
func Mean[H Tape](t *Tensor[H]) *Tensor[H] {
	return ops.Mean(t)
}

// Exp computes exp(t) element-wise.
func Exp[H Tape](t *Tensor[H]) *Tensor[H] {
	return ops.Exp(t)
}

// Select gathers along axis. See the package documentation for the accepted
// index shapes.
func Select[H Tape](t *Tensor[H], axis int, indices Indices) *Tensor[H] {
	return ops.Select(t, axis, indices)
}
