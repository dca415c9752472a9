// Package godcorr provides independence tests for paired time series.
//
// GoDcorr implements distance-based dependence tests that detect whether two
// time series are related, possibly at a lead/lag offset: the cross distance
// correlation test (DcorrX) and the cross multiscale graph correlation test
// (MGCX). Both search a range of lags, report the lag maximizing the detected
// dependence, and estimate a p-value by permutation resampling.
//
// # Quick Start
//
// Test whether y depends on x at lag 0 or 1:
//
//	x := timeseries.FromVector(xs)
//	y := timeseries.FromVector(ys)
//	test := dcorr.NewCross(1)
//	res, _ := test.Test(x, y, 1000)
//	fmt.Printf("stat=%.3f p=%.3f lag=%d\n", res.Statistic, res.PValue, res.OptLag)
//
// The multiscale variant additionally reports the optimal neighborhood scale:
//
//	res, _ := mgc.NewCross(1).Test(x, y, 1000)
//	fmt.Printf("scale=[%d,%d]\n", res.OptScale[0], res.OptScale[1])
//
// Inputs may also be precomputed distance matrices:
//
//	test := dcorr.NewCross(0)
//	test.Input = stats.Precomputed()
//	res, _ := test.Test(dx, dy, 1000)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dcorr: distance correlation and the DcorrX cross test
//   - mgc: multiscale graph correlation and the MGCX cross test
//   - discrim: one-sample discriminability test
//   - stats: distance matrices, lag search, permutation resampling
//   - timeseries: sample containers and CSV loading
//   - sims: stochastic processes for examples and tests
//
// # References
//
//   - Mehta, R., Chung, J., Shen, C., Xu, T., Vogelstein, J. T. (2019).
//     A Consistent Independence Test for Multivariate Time-Series.
//   - Szekely, G. J., Rizzo, M. L., Bakirov, N. K. (2007). Measuring and
//     testing dependence by correlation of distances.
//   - Vogelstein, J. T., et al. (2019). Discovering and deciphering
//     relationships across disparate data modalities.
package godcorr
