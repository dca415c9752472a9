package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/godcorr/timeseries"
)

func TestCrossLagStatisticWeights(t *testing.T) {
	dx := mat.NewDense(10, 10, nil)
	dy := mat.NewDense(10, 10, nil)

	one := func(_, _ mat.Matrix) float64 { return 1 }
	got := CrossLagStatistic(dx, dy, 2, one)

	// Each lag keeps (n-j)/n of the sample; the statistic sums the terms.
	assert.InDelta(t, 1.0, got.PerLag[0], 1e-12)
	assert.InDelta(t, 0.9, got.PerLag[1], 1e-12)
	assert.InDelta(t, 0.8, got.PerLag[2], 1e-12)
	assert.InDelta(t, 2.7, got.Statistic, 1e-12)
	assert.Equal(t, 0, got.OptLag)
}

func TestCrossLagStatisticBlockDims(t *testing.T) {
	dx := mat.NewDense(8, 8, nil)
	dy := mat.NewDense(8, 8, nil)

	var seen []int
	rec := func(sx, _ mat.Matrix) float64 {
		r, _ := sx.Dims()
		seen = append(seen, r)
		return 0
	}
	CrossLagStatistic(dx, dy, 3, rec)

	assert.Equal(t, []int{8, 7, 6, 5}, seen)
}

func TestCrossLagStatisticTieBreak(t *testing.T) {
	dx := mat.NewDense(10, 10, nil)
	dy := mat.NewDense(10, 10, nil)

	// The statistic cancels the lag weight, so every term ties at 1.
	inv := func(sx, _ mat.Matrix) float64 {
		r, _ := sx.Dims()
		return 10.0 / float64(r)
	}
	got := CrossLagStatistic(dx, dy, 3, inv)

	assert.Equal(t, 0, got.OptLag)
}

func TestLagBlocks(t *testing.T) {
	dx := mat.NewDense(6, 6, nil)
	dy := mat.NewDense(6, 6, nil)

	sx, sy := LagBlocks(dx, dy, 0)
	r, c := sx.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 6, c)

	sx, sy = LagBlocks(dx, dy, 2)
	r, _ = sx.Dims()
	assert.Equal(t, 4, r)
	r, _ = sy.Dims()
	assert.Equal(t, 4, r)
}

func TestSuggestMaxLag(t *testing.T) {
	assert.Equal(t, 0, SuggestMaxLag(1))
	assert.Equal(t, 1, SuggestMaxLag(10))
	assert.Equal(t, 2, SuggestMaxLag(100))
	assert.Equal(t, 3, SuggestMaxLag(101))
}

func TestValidateSamples(t *testing.T) {
	good := timeseries.FromVector([]float64{1, 2, 3, 4})

	require.NoError(t, ValidateSamples(good, good, 0))

	cases := []struct {
		name   string
		x, y   *timeseries.Sample
		maxLag int
	}{
		{"empty", timeseries.FromVector(nil), good, 0},
		{"mismatched", good, timeseries.FromVector([]float64{1, 2}), 0},
		{"non-finite", good, timeseries.FromVector([]float64{1, 2, math.NaN(), 4}), 0},
		{"lag too large", good, good, 4},
		{"negative lag", good, good, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSamples(tc.x, tc.y, tc.maxLag)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}
