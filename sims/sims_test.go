package sims

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godcorr/dcorr"
)

func TestCrossCorrARShapes(t *testing.T) {
	x, y := CrossCorrAR(50, 1, 0.9, 0.1, rand.NewPCG(1, 2))

	assert.Equal(t, 50, x.Len())
	assert.Equal(t, 50, y.Len())
	assert.True(t, x.Finite())
	assert.True(t, y.Finite())
}

func TestCrossCorrARDeterministic(t *testing.T) {
	x1, y1 := CrossCorrAR(30, 1, 0.5, 0.2, rand.NewPCG(9, 9))
	x2, y2 := CrossCorrAR(30, 1, 0.5, 0.2, rand.NewPCG(9, 9))

	for i := 0; i < 30; i++ {
		assert.Equal(t, x1.Row(i), x2.Row(i))
		assert.Equal(t, y1.Row(i), y2.Row(i))
	}

	x3, _ := CrossCorrAR(30, 1, 0.5, 0.2, rand.NewPCG(10, 10))
	assert.NotEqual(t, x1.Row(0), x3.Row(0))
}

func TestCrossCorrARDetectableAtLagOne(t *testing.T) {
	x, y := CrossCorrAR(100, 1, 0.9, 0.1, rand.NewPCG(123, 456))

	ct := dcorr.NewCross(1)
	ct.Seed = 42
	res, err := ct.Test(x, y, 100)
	require.NoError(t, err)

	assert.Equal(t, 1, res.OptLag)
	assert.LessOrEqual(t, res.PValue, 0.05)
}

func TestIndepARShapes(t *testing.T) {
	x, y := IndepAR(40, 0.5, 1.0, rand.NewPCG(3, 4))

	assert.Equal(t, 40, x.Len())
	assert.Equal(t, 40, y.Len())
	assert.True(t, x.Finite())
	assert.True(t, y.Finite())
}

func TestNonlinearProcessShapes(t *testing.T) {
	x, y := NonlinearProcess(60, 1, 1.0, 1.0, rand.NewPCG(5, 6))

	assert.Equal(t, 60, x.Len())
	assert.Equal(t, 60, y.Len())
	assert.True(t, x.Finite())
	assert.True(t, y.Finite())
}
