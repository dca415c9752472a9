package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceFunc computes the pairwise distance matrix among the rows of x.
type DistanceFunc func(x mat.Matrix) *mat.Dense

// Euclidean computes the pairwise Euclidean distance matrix of the rows of x.
func Euclidean(x mat.Matrix) *mat.Dense {
	n, _ := x.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, x)
	}

	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := floats.Distance(rows[i], rows[j], 2)
			d.Set(i, j, v)
			d.Set(j, i, v)
		}
	}
	return d
}

// Input selects how raw test arguments are interpreted: either as observations
// to be transformed into pairwise distances, or as precomputed distance
// matrices. The zero value is Raw(Euclidean).
type Input struct {
	precomputed bool
	distance    DistanceFunc
}

// Raw interprets arguments as observations and computes pairwise distances
// with fn. A nil fn selects Euclidean.
func Raw(fn DistanceFunc) Input {
	return Input{distance: fn}
}

// Precomputed interprets arguments as already-computed distance matrices.
func Precomputed() Input {
	return Input{precomputed: true}
}

// IsPrecomputed reports whether arguments are treated as distance matrices.
func (in Input) IsPrecomputed() bool {
	return in.precomputed
}

// Matrix resolves the distance matrix for a single argument.
func (in Input) Matrix(x mat.Matrix) (*mat.Dense, error) {
	n, p := x.Dims()
	if in.precomputed {
		if p != n {
			return nil, Invalidf("precomputed distance matrix must be square, got %dx%d", n, p)
		}
		return mat.DenseCopyOf(x), nil
	}
	fn := in.distance
	if fn == nil {
		fn = Euclidean
	}
	return fn(x), nil
}

// Matrices resolves the distance matrices for a sample pair.
func (in Input) Matrices(x, y mat.Matrix) (dx, dy *mat.Dense, err error) {
	nx, _ := x.Dims()
	ny, _ := y.Dims()
	if nx != ny {
		return nil, nil, Invalidf("samples have %d and %d observations; counts must match", nx, ny)
	}
	if dx, err = in.Matrix(x); err != nil {
		return nil, nil, err
	}
	if dy, err = in.Matrix(y); err != nil {
		return nil, nil, err
	}
	return dx, dy, nil
}

// PermuteRows returns m with rows reordered by perm. This is how a
// permutation of the null hypothesis is applied to a precomputed distance
// matrix: the matrix is the series, so only its observations (rows) move.
func PermuteRows(m *mat.Dense, perm []int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i, pi := range perm {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(pi, j))
		}
	}
	return out
}

// PermuteDistance returns d with rows and columns reordered by perm.
func PermuteDistance(d *mat.Dense, perm []int) *mat.Dense {
	n, _ := d.Dims()
	out := mat.NewDense(n, n, nil)
	for i, pi := range perm {
		for j, pj := range perm {
			out.Set(i, j, d.At(pi, pj))
		}
	}
	return out
}
