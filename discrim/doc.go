// Package discrim implements the one-sample discriminability test.
//
// Discriminability measures whether repeated measurements of the same item
// are more similar to one another than to measurements of other items. The
// one-sample test asks whether the observed discriminability of a dataset
// exceeds what random item assignment would produce:
//
//	test := discrim.NewOneSample()
//	res, err := test.Test(x, labels, 1000)
//	if err != nil {
//	    ...
//	}
//	fmt.Printf("D=%.3f p=%.3f\n", res.Statistic, res.PValue)
package discrim
