package gradcheck

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/gradtape/internal/autodiff"
)

// Run checks cases concurrently, at most cfg.Parallelism at a time.
//
// Every case draws its input from its own source seeded with cfg.Seed plus
// the case position, and owns its tape and gradient store, so results are
// reproducible whatever the scheduling. Results keep the order of cases.
// A case that panics aborts the run with an error.
func Run(ctx context.Context, cfg Config, cases []Case) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for i, c := range cases {
		g.Go(func() (err error) {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("case %s panicked: %v", c.Name, r)
				}
			}()

			rng := rand.New(rand.NewSource(cfg.Seed + uint64(i)))
			results[i] = Check(c, autodiff.Randn(c.Shape, rng), cfg)

			entry := logrus.WithFields(logrus.Fields{
				"case":      c.Name,
				"ops":       results[i].NumOps,
				"maxAbsErr": results[i].MaxAbsErr,
			})
			if results[i].Passed {
				entry.Debug("gradient check passed")
			} else {
				entry.Warn("gradient check failed")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
