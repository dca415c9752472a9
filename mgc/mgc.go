package mgc

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Statistic computes the multiscale graph correlation statistic and its
// optimal scale from a pair of distance matrices. The optimal scale is
// reported 1-based, so the global scale of an n-sample map is [n, n].
func Statistic(dx, dy mat.Matrix) (float64, [2]int) {
	corr := LocalCorrelations(dx, dy)
	rows, cols := corr.Dims()
	if rows == 1 || cols == 1 {
		return corr.At(rows-1, cols-1), [2]int{rows, cols}
	}

	n, _ := dx.Dims()
	sig := significantRegion(corr, n-1)
	return smoothedMaximum(sig, corr)
}

// significantRegion thresholds the local correlation map and keeps the
// largest 4-connected component of significant entries. The threshold comes
// from a beta approximation of the null local correlation, never below the
// global statistic.
func significantRegion(corr *mat.Dense, sampSize int) [][]bool {
	rows, cols := corr.Dims()

	threshold := math.Inf(1)
	shape := float64(sampSize)*float64(sampSize-3)/4 - 0.5
	if shape > 0 {
		// 0.02 is an empirical significance level for the approximation.
		perSig := 1 - 0.02/float64(sampSize)
		beta := distuv.Beta{Alpha: shape, Beta: shape}
		threshold = 2*beta.Quantile(perSig) - 1
	}
	if global := corr.At(rows-1, cols-1); global > threshold {
		threshold = global
	}

	sig := make([][]bool, rows)
	any := false
	for k := range sig {
		sig[k] = make([]bool, cols)
		for l := 0; l < cols; l++ {
			if corr.At(k, l) > threshold {
				sig[k][l] = true
				any = true
			}
		}
	}
	if !any {
		return sig
	}
	return largestComponent(sig)
}

// largestComponent keeps only the largest 4-connected true region.
func largestComponent(grid [][]bool) [][]bool {
	rows := len(grid)
	cols := len(grid[0])
	labels := make([][]int, rows)
	for k := range labels {
		labels[k] = make([]int, cols)
	}

	bestLabel, bestSize := 0, 0
	next := 0
	var queue [][2]int
	for k := 0; k < rows; k++ {
		for l := 0; l < cols; l++ {
			if !grid[k][l] || labels[k][l] != 0 {
				continue
			}
			next++
			size := 0
			queue = append(queue[:0], [2]int{k, l})
			labels[k][l] = next
			for len(queue) > 0 {
				c := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				size++
				for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					nk, nl := c[0]+d[0], c[1]+d[1]
					if nk < 0 || nk >= rows || nl < 0 || nl >= cols {
						continue
					}
					if grid[nk][nl] && labels[nk][nl] == 0 {
						labels[nk][nl] = next
						queue = append(queue, [2]int{nk, nl})
					}
				}
			}
			if size > bestSize {
				bestSize = size
				bestLabel = next
			}
		}
	}

	out := make([][]bool, rows)
	for k := range out {
		out[k] = make([]bool, cols)
		for l := 0; l < cols; l++ {
			out[k][l] = labels[k][l] == bestLabel && bestLabel != 0
		}
	}
	return out
}

// smoothedMaximum takes the maximum local correlation within the significant
// region when the region is large enough to trust, otherwise the global
// statistic. Scales are reported 1-based.
func smoothedMaximum(sig [][]bool, corr *mat.Dense) (float64, [2]int) {
	rows, cols := corr.Dims()
	stat := corr.At(rows-1, cols-1)
	scale := [2]int{rows, cols}

	area := 0
	maxCorr := math.Inf(-1)
	for k := 0; k < rows; k++ {
		for l := 0; l < cols; l++ {
			if sig[k][l] {
				area++
				if corr.At(k, l) > maxCorr {
					maxCorr = corr.At(k, l)
				}
			}
		}
	}
	if area == 0 {
		return stat, scale
	}

	// The region must cover a meaningful share of the map before a local
	// maximum is preferred over the global statistic.
	minArea := math.Ceil(0.02*float64(max(rows, cols))) * float64(min(rows, cols))
	if float64(area) >= minArea && maxCorr >= stat {
		stat = maxCorr
		for k := 0; k < rows; k++ {
			for l := 0; l < cols; l++ {
				if sig[k][l] && corr.At(k, l) >= maxCorr {
					scale = [2]int{k + 1, l + 1}
				}
			}
		}
	}
	return stat, scale
}
