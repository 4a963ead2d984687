// Package gradcheck compares the gradients computed by the backward pass with
// central finite differences.
package gradcheck

import (
	"math"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// Fn is a differentiable function from a tensor to a rank-0 tensor in tape mode H.
type Fn[H autodiff.Tape] func(x *autodiff.Tensor[H]) *autodiff.Tensor[H]

// Case is one function under test. Tracked and Inert must be the same
// generic function instantiated for both tape modes.
type Case struct {
	Name    string
	Shape   tensor.Shape
	Tracked Fn[*autodiff.GradientTape]
	Inert   Fn[autodiff.NoTape]
}

// Result is the outcome of checking one case.
type Result struct {
	Name      string
	Shape     tensor.Shape
	NumOps    int
	MaxAbsErr float64
	Passed    bool
}

// Check evaluates c at x. The analytic gradient comes from Backward on the
// tracked instantiation; the numerical one from (f(x+h) - f(x-h)) / 2h per
// element on the inert instantiation.
func Check(c Case, x *autodiff.Tensor[autodiff.NoTape], cfg Config) Result {
	tape := autodiff.NewGradientTape()
	y := c.Tracked(autodiff.TraceWith(x, tape))
	numOps := tape.NumOps()
	analytic := autodiff.Backward(y).Gradient(x).Data()

	data := append([]float32(nil), x.Data()...)
	eval := func() float64 {
		return float64(c.Inert(autodiff.MustFromSlice(data, x.Shape())).Item())
	}

	eps := float32(cfg.Epsilon)
	var maxErr float64
	for i, v := range data {
		data[i] = v + eps
		plus := eval()
		data[i] = v - eps
		minus := eval()
		data[i] = v

		numeric := (plus - minus) / (2 * cfg.Epsilon)
		maxErr = math.Max(maxErr, math.Abs(float64(analytic[i])-numeric))
	}

	return Result{
		Name:      c.Name,
		Shape:     x.Shape(),
		NumOps:    numOps,
		MaxAbsErr: maxErr,
		Passed:    maxErr <= cfg.Tolerance,
	}
}
