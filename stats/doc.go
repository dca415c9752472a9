// Package stats provides the shared statistical plumbing for the dependence tests.
//
// This package includes pairwise distance matrices, the raw-vs-precomputed
// input interpretation, the cross-lag search shared by the DcorrX and MGCX
// tests, and the permutation engine that estimates null distributions.
//
// # Input interpretation
//
// Tests accept either raw observations or precomputed distance matrices:
//
//	// Raw observations, pairwise Euclidean distances (the default)
//	in := stats.Raw(stats.Euclidean)
//
//	// Inputs are already distance matrices
//	in := stats.Precomputed()
//
// # Permutation resampling
//
// Estimate a null distribution and p-value for any index-permutation statistic:
//
//	cfg := stats.PermutationConfig{Reps: 1000, Seed: 42}
//	null, err := stats.NullDistribution(cfg, n, func(perm []int) float64 {
//	    return statistic(dx, stats.PermuteDistance(dy, perm))
//	})
//	p := stats.PValue(observed, null)
//
// Each replication draws from its own generator seeded off the master seed, so
// results are reproducible and independent of the worker count.
package stats
