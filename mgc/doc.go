// Package mgc implements multiscale graph correlation and the cross
// multiscale graph correlation (MGCX) independence test for paired time
// series.
//
// Multiscale graph correlation aggregates localized correlations over
// nearest-neighbor graphs at every pair of neighborhood scales and selects the
// scale pair maximizing the detected dependence. A global optimal scale
// [n, n] indicates a close-to-linear relationship; a local optimal scale
// indicates a nonlinear one. The cross variant scans a range of lags like the
// DcorrX test and additionally reports the optimal scale at the optimal lag:
//
//	res, err := mgc.NewCross(1).Test(x, y, 1000)
//	if err != nil {
//	    ...
//	}
//	fmt.Printf("stat=%.3f p=%.3f lag=%d scale=[%d,%d]\n",
//	    res.Statistic, res.PValue, res.OptLag, res.OptScale[0], res.OptScale[1])
package mgc
