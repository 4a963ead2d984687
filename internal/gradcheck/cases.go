package gradcheck

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/autodiff/ops"
	"github.com/born-ml/gradtape/internal/tensor"
)

// ErrUnknownCase is returned when a filter names a case that isn't registered.
var ErrUnknownCase = errors.New("unknown case")

var (
	repeatIndices = tensor.IndexList(0, 1, 2, 3, 4, 2, 4, 4)
	rowIndices    = tensor.IndexList(1, 2)
	resizeIndices = tensor.MustIndices([]int{
		0, 2, 1, 1, 2, 2, 0, 0,
		1, 0, 2, 1, 0, 0, 2, 1,
	}, 4, 2, 2)
	axis1Indices = tensor.MustIndices([]int{2, 0, 1, 1, 1, 0}, 2, 3)
	permutation  = tensor.IndexList(3, 0, 4, 1, 2)
	inverse      = tensor.IndexList(1, 3, 4, 0, 2)
)

func scalarRank0[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.SubScalar(ops.DivScalar(ops.Exp(ops.AddScalar(ops.MulScalar(x, 0.5), 1)), 3), 0.25)
}

func scalarRank1[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.SubScalar(ops.DivScalar(x, 2), 0.5)))
}

func scalarRank4[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Sum(ops.MulScalar(ops.AddScalar(x, 3), 0.25))
}

func meanDimRank1[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.MeanDim(ops.Exp(x), -1)
}

func meanDimRank2Axis0[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.MeanDim(x, 0)))
}

func meanDimRank3Axis1[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.MeanDim(x, 1)))
}

func meanDimRank4Last[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.MeanDim(x, -1)))
}

func sumDimRank3[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.MulScalar(ops.SumDim(x, 2), 0.5)))
}

func selectRepeat[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.Select(x, 0, repeatIndices)))
}

func selectConsume[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.Select(x, -1, rowIndices)))
}

func selectResize[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.Select(x, -1, resizeIndices)))
}

func selectRank4Axis1[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.Select(x, 1, axis1Indices)))
}

func selectRoundTrip[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Sum(ops.Exp(ops.Select(ops.Select(x, 0, permutation), 0, inverse)))
}

func mixedChain[H autodiff.Tape](x *autodiff.Tensor[H]) *autodiff.Tensor[H] {
	return ops.Mean(ops.Exp(ops.Select(ops.MeanDim(ops.AddScalar(x, 1), 0), 0, tensor.IndexList(2, 0, 2))))
}

// Registry returns the built-in cases, covering every op family at ranks 0 to 4.
func Registry() []Case {
	return []Case{
		{"scalar/rank0", tensor.Shape{}, scalarRank0[*autodiff.GradientTape], scalarRank0[autodiff.NoTape]},
		{"scalar/rank1", tensor.Shape{5}, scalarRank1[*autodiff.GradientTape], scalarRank1[autodiff.NoTape]},
		{"scalar/rank4", tensor.Shape{2, 1, 3, 2}, scalarRank4[*autodiff.GradientTape], scalarRank4[autodiff.NoTape]},
		{"meandim/rank1", tensor.Shape{4}, meanDimRank1[*autodiff.GradientTape], meanDimRank1[autodiff.NoTape]},
		{"meandim/rank2-axis0", tensor.Shape{3, 4}, meanDimRank2Axis0[*autodiff.GradientTape], meanDimRank2Axis0[autodiff.NoTape]},
		{"meandim/rank3-axis1", tensor.Shape{2, 3, 4}, meanDimRank3Axis1[*autodiff.GradientTape], meanDimRank3Axis1[autodiff.NoTape]},
		{"meandim/rank4-last", tensor.Shape{2, 2, 3, 2}, meanDimRank4Last[*autodiff.GradientTape], meanDimRank4Last[autodiff.NoTape]},
		{"sumdim/rank3", tensor.Shape{2, 2, 3}, sumDimRank3[*autodiff.GradientTape], sumDimRank3[autodiff.NoTape]},
		{"select/rank1-repeat", tensor.Shape{5}, selectRepeat[*autodiff.GradientTape], selectRepeat[autodiff.NoTape]},
		{"select/rank2-consume", tensor.Shape{2, 3}, selectConsume[*autodiff.GradientTape], selectConsume[autodiff.NoTape]},
		{"select/rank3-resize", tensor.Shape{4, 2, 3}, selectResize[*autodiff.GradientTape], selectResize[autodiff.NoTape]},
		{"select/rank4-axis1", tensor.Shape{2, 3, 2, 2}, selectRank4Axis1[*autodiff.GradientTape], selectRank4Axis1[autodiff.NoTape]},
		{"select/permutation", tensor.Shape{5}, selectRoundTrip[*autodiff.GradientTape], selectRoundTrip[autodiff.NoTape]},
		{"chain/mixed", tensor.Shape{3, 3}, mixedChain[*autodiff.GradientTape], mixedChain[autodiff.NoTape]},
	}
}

// Filter returns the cases named in names, in registry order.
// An empty names list selects every case.
func Filter(cases []Case, names []string) ([]Case, error) {
	if len(names) == 0 {
		return cases, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var out []Case
	for _, c := range cases {
		if wanted[c.Name] {
			out = append(out, c)
			delete(wanted, c.Name)
		}
	}

	if len(wanted) > 0 {
		missing := make([]string, 0, len(wanted))
		for n := range wanted {
			missing = append(missing, n)
		}
		sort.Strings(missing)
		return nil, errors.Wrapf(ErrUnknownCase, "%v", missing)
	}
	return out, nil
}
