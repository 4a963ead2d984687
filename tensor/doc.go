// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides shaped float32 tensors with reverse-mode
// differentiation.
//
// # Overview
//
// A tensor is either inert (Tensor[NoTape]) or tracking
// (Tensor[*autodiff.GradientTape]). Every operation in this package is
// generic over that tape mode:
//   - On an inert tensor it computes the result and nothing else.
//   - On a tracking tensor it also appends one backward record to the tape
//     and hands the tape to its result.
//
// The mode is a type parameter, so inference code never touches a tape.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradtape/autodiff"
//	    "github.com/born-ml/gradtape/tensor"
//	)
//
//	func main() {
//	    x := tensor.MustFromSlice([]float32{1, 2, 3, -2, 4, -6}, tensor.Shape{2, 3})
//
//	    // Inference: no tape
//	    m := tensor.MeanDim(x, 0) // [-0.5, 3, -1.5]
//
//	    // Training: trace, compose, differentiate
//	    loss := tensor.Mean(tensor.Exp(tensor.MeanDim(autodiff.Trace(x), 0)))
//	    grads := autodiff.Backward(loss)
//	    grads.Gradient(x) // shaped like x
//	}
//
// # Shapes
//
// Tensors have rank 0 to 4. Axes may be negative (-1 is the innermost axis).
// Shape, axis and index errors are programming errors: operations panic with
// an error wrapping ErrInvalidShape, ErrInvalidAxis, ErrShapeMismatch or
// ErrIndexOutOfRange before recording anything.
//
// # Ownership
//
// A tracking tensor feeds exactly one operation: the operation takes its tape.
// Feeding it again panics with autodiff.ErrTensorMoved. Inert tensors can be
// reused freely.
//
// # Select
//
// Select replaces one axis with the shape of an index collection:
//
//	x := tensor.MustFromSlice([]float32{1, 2, 3, -1, -2, -3}, tensor.Shape{2, 3})
//	tensor.Select(x, -1, tensor.IndexList(1, 2))          // [2, -3], axis consumed
//	tensor.Select(x, -1, tensor.MustIndices(
//	    []int{0, 0, 2, 1}, 2, 2))                         // [[1, 1], [-3, -2]], axis resized
//
// Repeated indices accumulate their gradients.
package tensor
