package dcorr

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godcorr/stats"
	"github.com/sartorproj/godcorr/timeseries"
)

// DefaultReps is the permutation count used by the documented examples.
const DefaultReps = 1000

// CrossTest is the cross distance correlation (DcorrX) test. The zero value
// searches lag 0 only, computes Euclidean distances from raw observations,
// uses all CPUs for the permutation loop, and seeds from the clock.
type CrossTest struct {
	MaxLag     int         // Largest lag searched; lags 0..MaxLag are scanned
	Input      stats.Input // Raw observations (default) or precomputed distances
	Workers    int         // Permutation parallelism; <= 0 uses GOMAXPROCS
	Seed       int64       // Master seed for the permutation null; 0 uses the clock
	FastApprox bool        // Chi-squared p-value approximation instead of permutations
}

// NewCross returns a DcorrX test searching lags 0..maxLag with defaults
// otherwise.
func NewCross(maxLag int) *CrossTest {
	return &CrossTest{MaxLag: maxLag}
}

// CrossResult holds the outcome of a DcorrX test.
type CrossResult struct {
	Statistic float64   // Sum of the weighted per-lag distance correlations
	PValue    float64   // Estimated p-value in [0, 1]
	OptLag    int       // Lag maximizing the weighted statistic
	PerLag    []float64 // Weighted statistic per lag 0..MaxLag
}

// Test computes the DcorrX statistic and its permutation p-value. x and y
// must have the same number of observations and contain only finite values;
// reps must be positive, though FastApprox ignores its value. The null
// hypothesis of no dependence is simulated by permuting y's observations
// independently of x.
func (ct *CrossTest) Test(x, y *timeseries.Sample, reps int) (*CrossResult, error) {
	if err := stats.ValidateSamples(x, y, ct.MaxLag); err != nil {
		return nil, err
	}
	if reps <= 0 {
		return nil, stats.Invalidf("reps must be positive, got %d", reps)
	}
	dx, dy, err := ct.Input.Matrices(x.Matrix(), y.Matrix())
	if err != nil {
		return nil, err
	}

	obs := stats.CrossLagStatistic(dx, dy, ct.MaxLag, Dcorr)
	res := &CrossResult{
		Statistic: obs.Statistic,
		OptLag:    obs.OptLag,
		PerLag:    obs.PerLag,
	}

	if ct.FastApprox {
		res.PValue = chi2PValue(obs.Statistic, x.Len())
		return res, nil
	}

	// Permuting raw observations is equivalent to reordering the distance
	// matrix symmetrically; a precomputed matrix is itself the series, so
	// only its rows move.
	permute := stats.PermuteDistance
	if ct.Input.IsPrecomputed() {
		permute = stats.PermuteRows
	}
	null, err := stats.NullDistribution(
		stats.PermutationConfig{Reps: reps, Workers: ct.Workers, Seed: ct.Seed},
		x.Len(),
		func(perm []int) float64 {
			return stats.CrossLagStatistic(dx, permute(dy, perm), ct.MaxLag, Dcorr).Statistic
		},
	)
	if err != nil {
		return nil, err
	}
	res.PValue = stats.PValue(obs.Statistic, null)
	return res, nil
}

// chi2PValue approximates the permutation p-value: under the null, n times
// the statistic plus one is approximately chi-squared with one degree of
// freedom.
func chi2PValue(stat float64, n int) float64 {
	chi2 := distuv.ChiSquared{K: 1}
	p := chi2.Survival(float64(n)*stat + 1)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
