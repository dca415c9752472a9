package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEuclidean(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		0, 0,
		3, 4,
		0, 1,
	})

	d := Euclidean(x)

	assert.Equal(t, 0.0, d.At(0, 0))
	assert.Equal(t, 5.0, d.At(0, 1))
	assert.Equal(t, 5.0, d.At(1, 0))
	assert.Equal(t, 1.0, d.At(0, 2))
	assert.InDelta(t, math.Sqrt(9+9), d.At(1, 2), 1e-12)
}

func TestRawInput(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewDense(3, 1, []float64{2, 1, 0})

	var in Input // zero value is Raw(Euclidean)
	dx, dy, err := in.Matrices(x, y)
	require.NoError(t, err)

	assert.Equal(t, 1.0, dx.At(0, 1))
	assert.Equal(t, 2.0, dy.At(0, 2))
}

func TestRawInputMismatchedCounts(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewDense(2, 1, []float64{0, 1})

	_, _, err := Raw(nil).Matrices(x, y)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestPrecomputedInput(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	got, err := Precomputed().Matrix(d)
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, got))

	// The copy protects the caller's matrix.
	got.Set(0, 1, 9)
	assert.Equal(t, 1.0, d.At(0, 1))
}

func TestPrecomputedInputNotSquare(t *testing.T) {
	d := mat.NewDense(2, 3, nil)

	_, err := Precomputed().Matrix(d)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestPermuteDistance(t *testing.T) {
	d := mat.NewDense(3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})

	p := PermuteDistance(d, []int{2, 0, 1})

	// Entry (i, j) of the result is d(perm[i], perm[j]).
	assert.Equal(t, 0.0, p.At(0, 0))
	assert.Equal(t, 2.0, p.At(0, 1))
	assert.Equal(t, 3.0, p.At(0, 2))
	assert.Equal(t, 1.0, p.At(1, 2))
}

func TestPermuteRows(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})

	p := PermuteRows(d, []int{1, 0})

	assert.Equal(t, 3.0, p.At(0, 0))
	assert.Equal(t, 2.0, p.At(1, 1))
}
