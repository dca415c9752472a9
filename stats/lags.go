package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/godcorr/timeseries"
)

// LagStat computes a dependence statistic from a pair of aligned distance
// matrix blocks.
type LagStat func(dx, dy mat.Matrix) float64

// CrossStat holds the outcome of a cross-lag search.
type CrossStat struct {
	Statistic float64   // Sum of the weighted per-lag statistics
	OptLag    int       // Lag with the largest weighted statistic; smallest wins ties
	PerLag    []float64 // Weighted statistic for each lag 0..maxLag
}

// CrossLagStatistic scans lags 0..maxLag. At lag j the last n-j observations
// of x are aligned against the first n-j observations of y, and the statistic
// on the aligned blocks is weighted by the surviving fraction (n-j)/n. The
// reported statistic is the sum of the weighted terms across the searched
// range.
func CrossLagStatistic(dx, dy *mat.Dense, maxLag int, stat LagStat) CrossStat {
	n, _ := dx.Dims()
	perLag := make([]float64, maxLag+1)
	sum := 0.0
	opt := 0
	best := math.Inf(-1)
	for j := 0; j <= maxLag; j++ {
		var sx, sy mat.Matrix = dx, dy
		if j > 0 {
			sx = dx.Slice(j, n, j, n)
			sy = dy.Slice(0, n-j, 0, n-j)
		}
		term := float64(n-j) / float64(n) * stat(sx, sy)
		perLag[j] = term
		sum += term
		if term > best {
			best = term
			opt = j
		}
	}
	return CrossStat{Statistic: sum, OptLag: opt, PerLag: perLag}
}

// LagBlocks returns the aligned distance matrix blocks for a single lag.
func LagBlocks(dx, dy *mat.Dense, lag int) (sx, sy mat.Matrix) {
	n, _ := dx.Dims()
	if lag <= 0 {
		return dx, dy
	}
	return dx.Slice(lag, n, lag, n), dy.Slice(0, n-lag, 0, n-lag)
}

// SuggestMaxLag returns the ceil(log10 n) rule of thumb for bounding the lag
// search as a fraction of the series length.
func SuggestMaxLag(n int) int {
	if n < 2 {
		return 0
	}
	return int(math.Ceil(math.Log10(float64(n))))
}

// ValidateSamples checks the input contract shared by the cross tests:
// non-empty samples of matching length, finite values, and a lag bound inside
// the sample.
func ValidateSamples(x, y *timeseries.Sample, maxLag int) error {
	n := x.Len()
	if n == 0 || y.Len() == 0 {
		return Invalidf("samples must not be empty")
	}
	if n != y.Len() {
		return Invalidf("samples have %d and %d observations; counts must match", n, y.Len())
	}
	if !x.Finite() || !y.Finite() {
		return Invalidf("samples must not contain NaN or infinite values")
	}
	if maxLag < 0 || maxLag >= n {
		return Invalidf("max lag %d out of range [0, %d)", maxLag, n)
	}
	return nil
}
