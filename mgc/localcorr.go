package mgc

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// LocalCorrelations computes the multiscale map of local correlations between
// two samples from their pairwise distance matrices. Entry (k, l) is the
// correlation restricted to the k nearest neighbors in x and the l nearest
// neighbors in y (0-based); the bottom-right entry is the global correlation.
func LocalCorrelations(dx, dy mat.Matrix) *mat.Dense {
	// A single observation has no distances to center.
	if n, _ := dx.Dims(); n < 2 {
		return mat.NewDense(1, 1, nil)
	}
	cx, rx := centerAndRank(dx)
	cy, ry := centerAndRank(dy)

	cxT := mat.DenseCopyOf(cx.T())
	cyT := mat.DenseCopyOf(cy.T())
	rxT := transposeRanks(rx)
	ryT := transposeRanks(ry)

	cov := localCovariance(cx, cyT, rx, ryT)
	varx := diagonal(localCovariance(cx, cxT, rx, rxT))
	vary := diagonal(localCovariance(cy, cyT, ry, ryT))

	nx, ny := cov.Dims()
	corr := mat.NewDense(nx, ny, nil)
	for k := 0; k < nx; k++ {
		for l := 0; l < ny; l++ {
			if varx[k] <= 0 || vary[l] <= 0 {
				continue
			}
			v := cov.At(k, l) / math.Sqrt(varx[k]*vary[l])
			// Floating point can push a local correlation negligibly past 1.
			if v > 1 {
				v = 1
			}
			corr.Set(k, l, v)
		}
	}
	return corr
}

// centerAndRank applies the MGC centering to a distance matrix and dense-ranks
// each column by distance, nearest first.
func centerAndRank(d mat.Matrix) (*mat.Dense, [][]int) {
	n, _ := d.Dims()

	// Column sums scaled by 1/(n-1). The diagonal is centered like any other
	// entry so constant-off-diagonal matrices keep their signal.
	colMeans := make([]float64, n)
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += d.At(i, j)
		}
		colMeans[j] = sum / float64(n-1)
	}

	cent := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cent.Set(i, j, d.At(i, j)-colMeans[j])
		}
	}
	return cent, rankColumns(d)
}

// rankColumns dense-ranks each column of d: the smallest distance in a column
// gets rank 0, equal distances share a rank.
func rankColumns(d mat.Matrix) [][]int {
	n, _ := d.Dims()
	ranks := make([][]int, n)
	for i := range ranks {
		ranks[i] = make([]int, n)
	}

	col := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = d.At(i, j)
		}
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		uniq := sorted[:1]
		for _, v := range sorted[1:] {
			if v != uniq[len(uniq)-1] {
				uniq = append(uniq, v)
			}
		}
		for i := 0; i < n; i++ {
			ranks[i][j] = sort.SearchFloat64s(uniq, col[i])
		}
	}
	return ranks
}

// localCovariance accumulates products of centered distances by neighbor rank
// and turns them into the family of local covariances via cumulative sums.
func localCovariance(a, b *mat.Dense, ra, rb [][]int) *mat.Dense {
	n, _ := a.Dims()
	nx := maxRank(ra) + 1
	ny := maxRank(rb) + 1

	cov := mat.NewDense(nx, ny, nil)
	ex := make([]float64, nx)
	ey := make([]float64, ny)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k, l := ra[i][j], rb[i][j]
			cov.Set(k, l, cov.At(k, l)+a.At(i, j)*b.At(i, j))
			ex[k] += a.At(i, j)
			ey[l] += b.At(i, j)
		}
	}

	// Cumulative sums down rows then across columns give every scale pair.
	for l := 0; l < ny; l++ {
		for k := 1; k < nx; k++ {
			cov.Set(k, l, cov.At(k, l)+cov.At(k-1, l))
		}
	}
	for k := 0; k < nx; k++ {
		for l := 1; l < ny; l++ {
			cov.Set(k, l, cov.At(k, l)+cov.At(k, l-1))
		}
	}
	for k := 1; k < nx; k++ {
		ex[k] += ex[k-1]
	}
	for l := 1; l < ny; l++ {
		ey[l] += ey[l-1]
	}

	nsq := float64(n) * float64(n)
	for k := 0; k < nx; k++ {
		for l := 0; l < ny; l++ {
			cov.Set(k, l, cov.At(k, l)-ex[k]*ey[l]/nsq)
		}
	}
	return cov
}

func transposeRanks(r [][]int) [][]int {
	n := len(r)
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			out[i][j] = r[j][i]
		}
	}
	return out
}

func maxRank(r [][]int) int {
	m := 0
	for i := range r {
		for _, v := range r[i] {
			if v > m {
				m = v
			}
		}
	}
	return m
}

func diagonal(m *mat.Dense) []float64 {
	n, _ := m.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.At(i, i)
	}
	return out
}
