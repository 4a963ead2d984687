package cpu

import (
	"math"

	"github.com/born-ml/gradtape/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return mapScalar("exp", x, func(v float32) float32 {
		return float32(math.Exp(float64(v)))
	})
}
