// Package autodiff implements reverse-mode automatic differentiation over
// shaped float32 tensors using a gradient tape.
//
// Architecture:
//   - Tensor[H]: storage plus a tape mode, NoTape (inert) or *GradientTape (tracking)
//   - GradientTape: append-only log of BackwardOp records made during the forward pass
//   - Gradients: per-run store of gradient buffers keyed by tensor identity
//   - Backward: drains the tape in reverse into a fresh Gradients store
//
// The tape mode is a type parameter, so inert code never pays for recording:
// operations are instantiated separately for NoTape and *GradientTape.
//
// Usage:
//
//	x := autodiff.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := ops.Mean(ops.Exp(ops.MeanDim(autodiff.Trace(x), 0)))
//	grads := autodiff.Backward(y)
//	fmt.Println(grads.Gradient(x).Data())
package autodiff
