// Package cpu implements the forward and backward kernels of the engine on dense
// float32 buffers.
package cpu

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/tensor"
)

// CPUBackend computes tensor kernels in pure Go.
// It is stateless; one instance can be shared freely.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// newResult allocates a zero-filled result tensor, panicking on a bad shape.
func newResult(op string, shape tensor.Shape) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// AddAssign adds src into dst element-wise (dst += src).
func (cpu *CPUBackend) AddAssign(dst, src []float32) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("addAssign: length mismatch %d vs %d", len(dst), len(src)))
	}
	for i, v := range src {
		dst[i] += v
	}
}
