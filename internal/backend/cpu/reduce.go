package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/tensor"
)

// SumDim sums tensor elements along the specified axis and removes it.
//
// The axis supports negative indexing (-1 = innermost).
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3, 4})
//	y := backend.SumDim(x, -1) // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	axis, err := shape.NormalizeAxis(dim)
	if err != nil {
		panic(errors.Wrap(err, "sumdim"))
	}

	result := newResult("sumdim", shape.RemoveAxis(axis))
	outer, n, inner := shape.SplitAt(axis)
	sumDimFloat32(x.Data(), result.Data(), outer, n, inner)

	return result
}

// sumDimFloat32 reduces a [outer, n, inner] buffer to [outer, inner].
func sumDimFloat32(src, dst []float32, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		out := dst[o*inner : (o+1)*inner]
		for k := 0; k < n; k++ {
			base := (o*n + k) * inner
			for i := range out {
				out[i] += src[base+i]
			}
		}
	}
}

// BroadcastAddDim is the adjoint of SumDim: every element of grad (shaped like
// x with axis removed) is added into all n positions of dst along that axis.
// dst is shaped like x.
func (cpu *CPUBackend) BroadcastAddDim(dst []float32, grad []float32, shape tensor.Shape, axis int) {
	outer, n, inner := shape.SplitAt(axis)
	for o := 0; o < outer; o++ {
		g := grad[o*inner : (o+1)*inner]
		for k := 0; k < n; k++ {
			base := (o*n + k) * inner
			for i, v := range g {
				dst[base+i] += v
			}
		}
	}
}

// Sum reduces all elements to a rank-0 tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := newResult("sum", tensor.Shape{})

	var sum float32
	for _, v := range x.Data() {
		sum += v
	}
	result.Data()[0] = sum

	return result
}
