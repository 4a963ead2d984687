// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Trace turns an inert tensor into a tracking one. Operations on tracking
// tensors append backward records to a GradientTape; Backward replays them
// from a scalar result, last recorded first, and returns the accumulated
// gradients keyed by tensor identity.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradtape/autodiff"
//	    "github.com/born-ml/gradtape/tensor"
//	)
//
//	func main() {
//	    x := tensor.MustFromSlice([]float32{0, 1, 2}, tensor.Shape{3})
//
//	    loss := tensor.Sum(tensor.Exp(tensor.AddScalar(autodiff.Trace(x), 0.5)))
//	    grads := autodiff.Backward(loss)
//
//	    grads.Gradient(x).Data() // [1.6487212, 4.481689, 12.182494]
//	}
//
// A tape is not safe for concurrent use. Give each goroutine its own.
package autodiff

import (
	"github.com/born-ml/gradtape/internal/autodiff"
)

// GradientTape records backward operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// BackwardOp is one recorded step of the backward pass.
type BackwardOp = autodiff.BackwardOp

// Gradients holds accumulated gradients keyed by tensor identity.
type Gradients = autodiff.Gradients

// ErrTensorMoved reports reuse of a tracking tensor whose tape was taken.
var ErrTensorMoved = autodiff.ErrTensorMoved

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Trace returns a tracking tensor with the identity and storage of t and a
// fresh tape.
func Trace(t *autodiff.Tensor[autodiff.NoTape]) *autodiff.Tensor[*GradientTape] {
	return autodiff.Trace(t)
}

// TraceWith is Trace with a caller-provided tape.
func TraceWith(t *autodiff.Tensor[autodiff.NoTape], tape *GradientTape) *autodiff.Tensor[*GradientTape] {
	return autodiff.TraceWith(t, tape)
}

// Backward runs the backward pass from a rank-0 tracking tensor and returns
// the gradients of every tensor that contributed to it.
func Backward(t *autodiff.Tensor[*GradientTape]) *Gradients {
	return autodiff.Backward(t)
}
