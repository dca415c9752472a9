package stats

import (
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// PermutationConfig controls null-distribution estimation.
type PermutationConfig struct {
	Reps    int   // Number of permutation replications
	Workers int   // Parallelism; <= 0 uses GOMAXPROCS
	Seed    int64 // Master seed; 0 derives one from the clock
}

// seedMix separates the two PCG seed words derived from one master seed.
const seedMix = 0x9e3779b97f4a7c15

// NullDistribution estimates the null distribution of a statistic by
// evaluating stat on Reps random permutations of n indices. Each replication
// draws its permutation from a private generator seeded off the master seed,
// so the result is reproducible for a fixed Seed and does not depend on the
// worker count.
func NullDistribution(cfg PermutationConfig, n int, stat func(perm []int) float64) ([]float64, error) {
	if cfg.Reps <= 0 {
		return nil, Invalidf("reps must be positive, got %d", cfg.Reps)
	}
	if n <= 0 {
		return nil, Invalidf("sample size must be positive, got %d", n)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	master := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^seedMix))

	// Per-replication seeds so workers never share a generator.
	seeds := make([][2]uint64, cfg.Reps)
	for i := range seeds {
		seeds[i] = [2]uint64{master.Uint64(), master.Uint64()}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	null := make([]float64, cfg.Reps)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < cfg.Reps; i++ {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))
			null[i] = stat(r.Perm(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return null, nil
}

// PValue estimates the permutation p-value of observed against a null sample.
// The +1/+1 continuity correction keeps the estimate away from zero, so the
// smallest reportable p-value is 1/(reps+1).
func PValue(observed float64, null []float64) float64 {
	count := 0
	for _, v := range null {
		if v >= observed {
			count++
		}
	}
	return float64(count+1) / float64(len(null)+1)
}
