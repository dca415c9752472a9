package mgc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/godcorr/stats"
	"github.com/sartorproj/godcorr/timeseries"
)

// DefaultReps is the permutation count used by the documented examples.
const DefaultReps = 1000

// CrossTest is the cross multiscale graph correlation (MGCX) test. The zero
// value searches lag 0 only, computes Euclidean distances from raw
// observations, uses all CPUs for the permutation loop, and seeds from the
// clock.
type CrossTest struct {
	MaxLag  int         // Largest lag searched; lags 0..MaxLag are scanned
	Input   stats.Input // Raw observations (default) or precomputed distances
	Workers int         // Permutation parallelism; <= 0 uses GOMAXPROCS
	Seed    int64       // Master seed for the permutation null; 0 uses the clock
}

// NewCross returns an MGCX test searching lags 0..maxLag with defaults
// otherwise.
func NewCross(maxLag int) *CrossTest {
	return &CrossTest{MaxLag: maxLag}
}

// CrossResult holds the outcome of an MGCX test.
type CrossResult struct {
	Statistic float64   // Sum of the weighted per-lag MGC statistics
	PValue    float64   // Estimated p-value in [0, 1]
	OptLag    int       // Lag maximizing the weighted statistic
	OptScale  [2]int    // Optimal neighborhood scale pair at the optimal lag
	PerLag    []float64 // Weighted statistic per lag 0..MaxLag
}

// Test computes the MGCX statistic and its permutation p-value. x and y must
// have the same number of observations and contain only finite values; reps
// must be positive. The null hypothesis of no dependence is simulated by
// permuting y's observations independently of x.
func (ct *CrossTest) Test(x, y *timeseries.Sample, reps int) (*CrossResult, error) {
	if err := stats.ValidateSamples(x, y, ct.MaxLag); err != nil {
		return nil, err
	}
	dx, dy, err := ct.Input.Matrices(x.Matrix(), y.Matrix())
	if err != nil {
		return nil, err
	}

	lagStat := func(sx, sy mat.Matrix) float64 {
		s, _ := Statistic(sx, sy)
		return s
	}
	obs := stats.CrossLagStatistic(dx, dy, ct.MaxLag, lagStat)

	// The optimal scale is the one found at the optimal lag.
	bx, by := stats.LagBlocks(dx, dy, obs.OptLag)
	_, optScale := Statistic(bx, by)

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
			return stats.CrossLagStatistic(dx, permute(dy, perm), ct.MaxLag, lagStat).Statistic
		},
	)
	if err != nil {
		return nil, err
	}

	return &CrossResult{
		Statistic: obs.Statistic,
		PValue:    stats.PValue(obs.Statistic, null),
		OptLag:    obs.OptLag,
		OptScale:  optScale,
		PerLag:    obs.PerLag,
	}, nil
}
