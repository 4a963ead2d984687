package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/tensor"
)

// SelectShape computes the output shape of selecting idx along axis of shape.
//
// The index shape must be either shape[:axis] (one index per leading
// coordinate, the axis is consumed) or shape[:axis] + [z] (the axis is resized
// to z). It returns the output shape and z (1 when the axis is consumed).
func SelectShape(shape tensor.Shape, axis int, idx tensor.Indices) (tensor.Shape, int, error) {
	lead := shape[:axis]
	idxShape := idx.Shape()

	out := make(tensor.Shape, 0, len(shape))
	out = append(out, lead...)

	z := 1
	switch {
	case idxShape.Equal(lead):
	case len(idxShape) == axis+1 && idxShape[:axis].Equal(lead):
		z = idxShape[axis]
		out = append(out, z)
	default:
		return nil, 0, errors.Wrapf(tensor.ErrShapeMismatch,
			"indices of shape %v cannot select axis %d of shape %v", idxShape, axis, shape)
	}

	return append(out, shape[axis+1:]...), z, nil
}

// Select gathers elements along axis: for every output coordinate the input
// element addressed by substituting the index value on axis is copied.
// The same input element may be copied any number of times.
//
// Panics if the index shape doesn't fit or any index is out of range.
//
// Example:
//
//	x: [[1, 2, 3], [4, 5, 6]]    shape [2, 3]
//	backend.Select(x, -1, tensor.IndexList(2, 0))
//	→ [3, 4]                     shape [2]
//
// ops.Select validates before taking the tape. The kernel validates again for
// direct callers, so a bad request never reads outside the buffer.
func (cpu *CPUBackend) Select(x *tensor.RawTensor, dim int, idx tensor.Indices) *tensor.RawTensor {
	shape := x.Shape()
	axis, err := shape.NormalizeAxis(dim)
	if err != nil {
		panic(errors.Wrap(err, "select"))
	}

	outShape, z, err := SelectShape(shape, axis, idx)
	if err != nil {
		panic(errors.Wrap(err, "select"))
	}
	if err := idx.CheckBounds(shape[axis]); err != nil {
		panic(errors.Wrap(err, "select"))
	}

	result := newResult("select", outShape)
	outer, n, inner := shape.SplitAt(axis)
	selectFloat32(result.Data(), x.Data(), idx.Data(), outer, n, inner, z)

	return result
}

// selectFloat32 copies blocks: dst[o, j, :] = src[o, idx[o, j], :].
func selectFloat32(dst, src []float32, idx []int, outer, n, inner, z int) {
	for o := 0; o < outer; o++ {
		for j := 0; j < z; j++ {
			k := idx[o*z+j]
			dstOff := (o*z + j) * inner
			srcOff := (o*n + k) * inner
			copy(dst[dstOff:dstOff+inner], src[srcOff:srcOff+inner])
		}
	}
}

// SelectAdd is the adjoint of Select: grad (shaped like the select output) is
// scatter-added into dst (shaped like the select input). Positions selected
// several times accumulate every contribution.
//
// idx must already have been validated by Select.
func (cpu *CPUBackend) SelectAdd(dst, grad []float32, shape tensor.Shape, axis int, idx tensor.Indices) {
	outer, n, inner := shape.SplitAt(axis)
	if outer == 0 {
		return
	}
	z := idx.Len() / outer
	positions := idx.Data()

	for o := 0; o < outer; o++ {
		for j := 0; j < z; j++ {
			k := positions[o*z+j]
			gradOff := (o*z + j) * inner
			dstOff := (o*n + k) * inner
			for i, v := range grad[gradOff : gradOff+inner] {
				dst[dstOff+i] += v
			}
		}
	}
}
