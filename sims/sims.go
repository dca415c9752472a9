package sims

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godcorr/timeseries"
)

// CrossCorrAR simulates a pair where y follows x linearly at the given lag:
// x is white noise and y_t = phi*x_{t-lag} + eta_t, with independent Gaussian
// noise of standard deviation sigma.
func CrossCorrAR(n, lag int, phi, sigma float64, src rand.Source) (x, y *timeseries.Sample) {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for t := 0; t < n; t++ {
		xs[t] = noise.Rand()
		ys[t] = noise.Rand()
	}
	for t := lag; t < n; t++ {
		ys[t] += phi * xs[t-lag]
	}
	return timeseries.FromVector(xs), timeseries.FromVector(ys)
}

// IndepAR simulates two independent AR(1) processes with coefficient phi and
// Gaussian innovations of standard deviation sigma.
func IndepAR(n int, phi, sigma float64, src rand.Source) (x, y *timeseries.Sample) {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for t := 0; t < n; t++ {
		xs[t] = noise.Rand()
		ys[t] = noise.Rand()
		if t > 0 {
			xs[t] += phi * xs[t-1]
			ys[t] += phi * ys[t-1]
		}
	}
	return timeseries.FromVector(xs), timeseries.FromVector(ys)
}

// NonlinearProcess simulates a multiplicative lagged dependence: x is white
// noise and y_t = phi*eta_t*x_{t-lag}, so y depends on x but is uncorrelated
// with it.
func NonlinearProcess(n, lag int, phi, sigma float64, src rand.Source) (x, y *timeseries.Sample) {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for t := 0; t < n; t++ {
		xs[t] = noise.Rand()
		ys[t] = noise.Rand()
	}
	for t := lag; t < n; t++ {
		ys[t] = phi * ys[t] * xs[t-lag]
	}
	return timeseries.FromVector(xs), timeseries.FromVector(ys)
}
