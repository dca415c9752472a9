package dcorr

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dcorr computes the unbiased distance correlation between two samples from
// their pairwise distance matrices. The result lies in [-1, 1]; it is 0 when
// either sample has no distance variance or the sample is too small for the
// unbiased estimator (n < 4).
func Dcorr(dx, dy mat.Matrix) float64 {
	n, _ := dx.Dims()
	if n < 4 {
		return 0
	}

	ax := uCenter(dx)
	ay := uCenter(dy)

	varx := uInner(ax, ax)
	vary := uInner(ay, ay)
	if varx <= 0 || vary <= 0 {
		return 0
	}
	return uInner(ax, ay) / math.Sqrt(varx*vary)
}

// Dcov computes the unbiased squared distance covariance between two samples
// from their pairwise distance matrices.
func Dcov(dx, dy mat.Matrix) float64 {
	n, _ := dx.Dims()
	if n < 4 {
		return 0
	}
	return uInner(uCenter(dx), uCenter(dy))
}

// uCenter applies the unbiased (U-centered) transform to a distance matrix:
// entries lose their row and column means and regain the grand mean, with
// small-sample corrections. The diagonal is kept so that precomputed
// similarity-style matrices with constant off-diagonal entries retain their
// signal.
func uCenter(d mat.Matrix) *mat.Dense {
	n, _ := d.Dims()
	rows := make([]float64, n)
	cols := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := d.At(i, j)
			rows[i] += v
			cols[j] += v
			total += v
		}
	}

	nf := float64(n)
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := d.At(i, j) - rows[i]/(nf-2) - cols[j]/(nf-2) + total/((nf-1)*(nf-2))
			out.Set(i, j, v)
		}
	}
	return out
}

// uInner is the unbiased inner product of two U-centered matrices,
// sum(a∘b) / (n(n-3)).
func uInner(a, b *mat.Dense) float64 {
	n, _ := a.Dims()
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum += a.At(i, j) * b.At(i, j)
		}
	}
	return sum / (float64(n) * float64(n-3))
}
