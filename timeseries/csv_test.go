package timeseries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVSingleColumn(t *testing.T) {
	data := "t,y\n1,1.5\n2,2.5\n3,3.5\n"

	opts := DefaultCSVOptions()
	opts.ValueColumns = []string{"y"}
	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)

	n, p := s.Dims()
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, p)
	assert.Equal(t, []float64{2.5}, s.Row(1))
}

func TestLoadCSVMultiColumn(t *testing.T) {
	data := "a,b,c\n1,2,x\n3,4,y\n"

	opts := DefaultCSVOptions()
	opts.ValueColumns = []string{"a", "b"}
	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)

	n, p := s.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, p)
	assert.Equal(t, []float64{3, 4}, s.Row(1))
}

func TestLoadCSVSkipsMissing(t *testing.T) {
	data := "y\n1\nNA\n\n3\nnot-a-number\n5\n"

	opts := DefaultCSVOptions()
	opts.ValueColumns = []string{"y"}
	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{5}, s.Row(2))
}

func TestLoadCSVNoHeader(t *testing.T) {
	data := "1,10\n2,20\n"

	opts := DefaultCSVOptions()
	opts.HasHeader = false
	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)

	n, p := s.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, p)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	data := "a,b\n1,2\n"

	opts := DefaultCSVOptions()
	opts.ValueColumns = []string{"z"}
	_, err := LoadCSVFromReader(strings.NewReader(data), opts)
	assert.Error(t, err)
}

func TestLoadCSVEmpty(t *testing.T) {
	data := "y\n"

	opts := DefaultCSVOptions()
	opts.ValueColumns = []string{"y"}
	_, err := LoadCSVFromReader(strings.NewReader(data), opts)
	assert.Error(t, err)
}
