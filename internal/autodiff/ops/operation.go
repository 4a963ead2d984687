// Package ops implements the primitive differentiable operations.
//
// Every operation is a generic function over the tape mode H. It computes the
// forward result eagerly on the CPU backend and, when H is *GradientTape,
// records exactly one BackwardOp capturing what its local derivative needs.
//
// Supported operations:
//   - AddScalar, SubScalar: d(x±c)/dx = 1
//   - MulScalar: d(x*c)/dx = c
//   - DivScalar: d(x/c)/dx = 1/c
//   - SumDim: gradient broadcast back along the removed axis
//   - MeanDim: SumDim followed by DivScalar(size of axis)
//   - Sum, Mean: full reductions to rank 0
//   - Exp: d(exp(x))/dx = exp(x)
//   - Select: gather along an axis; backward scatter-adds
package ops

import "github.com/born-ml/gradtape/internal/backend/cpu"

var backend = cpu.New()
