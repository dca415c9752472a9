package discrim

import (
	"math"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/godcorr/stats"
	"github.com/sartorproj/godcorr/timeseries"
)

// OneSample is the one-sample discriminability test. RemoveIsolates drops
// items measured only once, since a single measurement has no within-item
// comparison.
type OneSample struct {
	Input          stats.Input // Raw observations (default) or a precomputed distance matrix
	RemoveIsolates bool        // Drop items with a single measurement
	Workers        int         // Permutation parallelism; <= 0 uses GOMAXPROCS
	Seed           int64       // Master seed for the permutation null; 0 uses the clock
}

// NewOneSample returns a one-sample test with isolate removal enabled.
func NewOneSample() *OneSample {
	return &OneSample{RemoveIsolates: true}
}

// Result holds the outcome of a discriminability test.
type Result struct {
	Statistic float64 // Discriminability index in [0, 1]
	PValue    float64 // Estimated p-value in [0, 1]
	N         int     // Measurements used after isolate removal
}

// Test computes the discriminability of x under the item assignment in labels
// and a permutation p-value against random assignment. x holds one
// measurement per row (or a precomputed distance matrix); labels assigns each
// measurement to an item.
func (t *OneSample) Test(x *timeseries.Sample, labels []int, reps int) (*Result, error) {
	n := x.Len()
	if n == 0 {
		return nil, stats.Invalidf("sample must not be empty")
	}
	if len(labels) != n {
		return nil, stats.Invalidf("got %d labels for %d measurements", len(labels), n)
	}
	if !x.Finite() {
		return nil, stats.Invalidf("sample must not contain NaN or infinite values")
	}
	if reps <= 0 {
		return nil, stats.Invalidf("reps must be positive, got %d", reps)
	}

	keep := labels
	xm := mat.Matrix(x.Matrix())
	if t.RemoveIsolates {
		idx := multiMeasured(labels)
		if len(idx) < n {
			keep = make([]int, len(idx))
			for i, j := range idx {
				keep[i] = labels[j]
			}
			xm = reduce(x.Matrix(), idx, t.Input.IsPrecomputed())
		}
	}
	if len(keep) < 2 || distinct(keep) < 2 {
		return nil, stats.Invalidf("need at least two items with repeated measurements")
	}

	d, err := t.Input.Matrix(xm)
	if err != nil {
		return nil, err
	}

	stat := statistic(d, keep)
	null, err := t.nullDistribution(d, keep, reps)
	if err != nil {
		return nil, err
	}

	// Never report zero: floor the estimate at the test's resolution.
	count := 0
	for _, v := range null {
		if v >= stat {
			count++
		}
	}
	p := float64(count) / float64(reps)
	if p == 0 {
		p = 1 / float64(reps)
	}

	return &Result{Statistic: stat, PValue: p, N: len(keep)}, nil
}

// nullDistribution evaluates the statistic under random label permutations,
// one private generator per replication.
func (t *OneSample) nullDistribution(d *mat.Dense, labels []int, reps int) ([]float64, error) {
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	master := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	seeds := make([][2]uint64, reps)
	for i := range seeds {
		seeds[i] = [2]uint64{master.Uint64(), master.Uint64()}
	}

	workers := t.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	null := make([]float64, reps)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < reps; i++ {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))
			perm := r.Perm(len(labels))
			permuted := make([]int, len(labels))
			for j, pj := range perm {
				permuted[j] = labels[pj]
			}
			null[i] = statistic(d, permuted)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return null, nil
}

// statistic is the discriminability index: the mean, over all within-item
// measurement pairs, of the fraction of cross-item distances exceeding the
// within-item distance, counting ties as half.
func statistic(d *mat.Dense, labels []int) float64 {
	n := len(labels)
	sum := 0.0
	count := 0
	cross := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		cross = cross[:0]
		for j := 0; j < n; j++ {
			if labels[j] != labels[i] {
				cross = append(cross, d.At(i, j))
			}
		}
		if len(cross) == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if j == i || labels[j] != labels[i] {
				continue
			}
			within := d.At(i, j)
			smaller := 0.0
			for _, v := range cross {
				if v < within {
					smaller++
				} else if v == within {
					smaller += 0.5
				}
			}
			sum += 1 - smaller/float64(len(cross))
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// multiMeasured returns the indices of measurements whose item appears more
// than once.
func multiMeasured(labels []int) []int {
	counts := make(map[int]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	var idx []int
	for i, l := range labels {
		if counts[l] > 1 {
			idx = append(idx, i)
		}
	}
	return idx
}

func distinct(labels []int) int {
	seen := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// reduce keeps only the given measurement rows; for a precomputed distance
// matrix the columns are reduced symmetrically.
func reduce(m *mat.Dense, idx []int, precomputed bool) mat.Matrix {
	_, p := m.Dims()
	if precomputed {
		out := mat.NewDense(len(idx), len(idx), nil)
		for a, i := range idx {
			for b, j := range idx {
				out.Set(a, b, m.At(i, j))
			}
		}
		return out
	}
	out := mat.NewDense(len(idx), p, nil)
	for a, i := range idx {
		out.SetRow(a, mat.Row(nil, i, m))
	}
	return out
}
