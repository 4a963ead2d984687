// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// MaxRank is the highest supported rank.
const MaxRank = tensor.MaxRank

// Indices is an index collection for Select.
type Indices = tensor.Indices

// Tape is the tape-mode constraint: NoTape or *autodiff.GradientTape.
type Tape = autodiff.Tape

// NoTape is the inert tape mode.
type NoTape = autodiff.NoTape

// Tensor is a shaped float32 tensor in tape mode H.
type Tensor[H Tape] = autodiff.Tensor[H]

// RandSource supplies random numbers to Randn and Rand.
type RandSource = tensor.RandSource

// Structural errors.
var (
	ErrInvalidShape    = tensor.ErrInvalidShape
	ErrInvalidAxis     = tensor.ErrInvalidAxis
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
)

// FromSlice creates an inert tensor that copies data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float32, shape Shape) (*Tensor[NoTape], error) {
	return autodiff.FromSlice(data, shape)
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice(data []float32, shape Shape) *Tensor[NoTape] {
	return autodiff.MustFromSlice(data, shape)
}

// Zeros creates an inert tensor filled with zeros.
func Zeros(shape Shape) *Tensor[NoTape] {
	return autodiff.Zeros(shape)
}

// Ones creates an inert tensor filled with ones.
func Ones(shape Shape) *Tensor[NoTape] {
	return autodiff.Ones(shape)
}

// Full creates an inert tensor filled with value.
func Full(shape Shape, value float32) *Tensor[NoTape] {
	return autodiff.Full(shape, value)
}

// Randn creates an inert tensor with standard normal values.
//
// Example:
//
//	x := tensor.Randn(tensor.Shape{3, 4}, rand.New(rand.NewSource(42)))
func Randn(shape Shape, src RandSource) *Tensor[NoTape] {
	return autodiff.Randn(shape, src)
}

// Rand creates an inert tensor with values uniform in [0, 1).
func Rand(shape Shape, src RandSource) *Tensor[NoTape] {
	return autodiff.Rand(shape, src)
}

// NewIndices creates an index collection of the given shape.
func NewIndices(data []int, shape ...int) (Indices, error) {
	return tensor.NewIndices(data, shape...)
}

// MustIndices is NewIndices that panics on error.
func MustIndices(data []int, shape ...int) Indices {
	return tensor.MustIndices(data, shape...)
}

// Index is a single position. Selecting it consumes the axis.
func Index(i int) Indices {
	return tensor.Index(i)
}

// IndexList is a flat list of positions.
func IndexList(idx ...int) Indices {
	return tensor.IndexList(idx...)
}
