package gradcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/autodiff/ops"
	"github.com/born-ml/gradtape/internal/tensor"
)

func TestCheck_Passes(t *testing.T) {
	c := Case{
		Name:    "mean-exp",
		Shape:   tensor.Shape{3},
		Tracked: scalarRank1[*autodiff.GradientTape],
		Inert:   scalarRank1[autodiff.NoTape],
	}
	x := autodiff.MustFromSlice([]float32{0.5, -1, 2}, tensor.Shape{3})

	r := Check(c, x, DefaultConfig())
	assert.True(t, r.Passed, "max error %g", r.MaxAbsErr)
	assert.Equal(t, "mean-exp", r.Name)
	assert.Equal(t, tensor.Shape{3}, r.Shape)
	assert.Equal(t, 5, r.NumOps) // div, sub, exp, sum, div
	assert.Equal(t, []float32{0.5, -1, 2}, x.Data(), "input is left untouched")
}

// A backward rule that disagrees with the forward pass must be caught.
func TestCheck_DetectsWrongGradient(t *testing.T) {
	c := Case{
		Name:    "mismatched",
		Shape:   tensor.Shape{2},
		Tracked: func(x *autodiff.Tensor[*autodiff.GradientTape]) *autodiff.Tensor[*autodiff.GradientTape] { return ops.Sum(x) },
		Inert:   func(x *autodiff.Tensor[autodiff.NoTape]) *autodiff.Tensor[autodiff.NoTape] { return ops.Sum(ops.MulScalar(x, 3)) },
	}
	x := autodiff.MustFromSlice([]float32{1, 2}, tensor.Shape{2})

	r := Check(c, x, DefaultConfig())
	assert.False(t, r.Passed)
	assert.InDelta(t, 2.0, r.MaxAbsErr, 1e-2)
}

func TestRegistry_EveryCasePasses(t *testing.T) {
	cfg := DefaultConfig()
	ranks := map[int]bool{}
	for i, c := range Registry() {
		ranks[c.Shape.Rank()] = true
		x := autodiff.Randn(c.Shape, newSource(cfg.Seed+uint64(i)))

		r := Check(c, x, cfg)
		assert.True(t, r.Passed, "%s: max error %g", c.Name, r.MaxAbsErr)
		assert.Positive(t, r.NumOps, c.Name)
	}
	for rank := 0; rank <= tensor.MaxRank; rank++ {
		assert.True(t, ranks[rank], "no case of rank %d", rank)
	}
}

func TestRegistry_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Registry() {
		assert.False(t, seen[c.Name], "duplicate case %s", c.Name)
		seen[c.Name] = true
	}
}

func TestFilter(t *testing.T) {
	all := Registry()

	got, err := Filter(all, nil)
	assert.NoError(t, err)
	assert.Len(t, got, len(all))

	got, err = Filter(all, []string{"select/rank1-repeat", "scalar/rank0"})
	assert.NoError(t, err)
	assert.Equal(t, "scalar/rank0", got[0].Name, "registry order is kept")
	assert.Equal(t, "select/rank1-repeat", got[1].Name)

	_, err = Filter(all, []string{"scalar/rank0", "nope"})
	assert.ErrorIs(t, err, ErrUnknownCase)
	assert.Contains(t, err.Error(), "nope")
}
