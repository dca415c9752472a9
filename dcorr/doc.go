// Package dcorr implements distance correlation and the cross distance
// correlation (DcorrX) independence test for paired time series.
//
// Distance correlation measures dependence between two samples from their
// pairwise distances; under mild conditions it is zero if and only if the
// samples are independent. The cross variant scans a range of lags to detect
// lead/lag relationships and estimates a p-value by permutation resampling:
//
//	test := dcorr.NewCross(1) // search lags 0 and 1
//	res, err := test.Test(x, y, 1000)
//	if err != nil {
//	    ...
//	}
//	fmt.Printf("stat=%.3f p=%.3f lag=%d\n", res.Statistic, res.PValue, res.OptLag)
//
// Setting FastApprox replaces the permutation loop with a chi-squared
// approximation, which is accurate for larger samples.
package dcorr
