// Package timeseries provides sample containers for paired time series.
package timeseries

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sample represents an ordered set of observations, one row per time step.
// A scalar series has one column; a multivariate series has one column per
// dimension. Samples are treated as immutable: methods that derive a new
// sample always copy.
type Sample struct {
	data *mat.Dense
	Name string
}

// FromVector creates a scalar (single column) sample from values.
func FromVector(values []float64) *Sample {
	if len(values) == 0 {
		return &Sample{}
	}
	d := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		d.Set(i, 0, v)
	}
	return &Sample{data: d}
}

// FromRows creates a multivariate sample; each row is one observation.
func FromRows(rows [][]float64) (*Sample, error) {
	if len(rows) == 0 {
		return &Sample{}, nil
	}
	p := len(rows[0])
	if p == 0 {
		return nil, errors.New("observations must have at least one dimension")
	}
	d := mat.NewDense(len(rows), p, nil)
	for i, row := range rows {
		if len(row) != p {
			return nil, errors.New("all observations must have the same dimension")
		}
		d.SetRow(i, row)
	}
	return &Sample{data: d}, nil
}

// FromMatrix creates a sample from a matrix, copying the data.
func FromMatrix(m mat.Matrix) *Sample {
	if m == nil {
		return &Sample{}
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &Sample{}
	}
	return &Sample{data: mat.DenseCopyOf(m)}
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	if s == nil || s.data == nil {
		return 0
	}
	n, _ := s.data.Dims()
	return n
}

// Dims returns the number of observations and the dimension per observation.
func (s *Sample) Dims() (n, p int) {
	if s == nil || s.data == nil {
		return 0, 0
	}
	return s.data.Dims()
}

// Matrix returns the underlying observation matrix. Callers must not modify it.
func (s *Sample) Matrix() *mat.Dense {
	if s == nil {
		return nil
	}
	return s.data
}

// Row returns a copy of observation i.
func (s *Sample) Row(i int) []float64 {
	return mat.Row(nil, i, s.data)
}

// Slice returns observations [start, end) as a new sample.
func (s *Sample) Slice(start, end int) *Sample {
	n, p := s.Dims()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return &Sample{Name: s.Name}
	}
	return &Sample{
		data: mat.DenseCopyOf(s.data.Slice(start, end, 0, p)),
		Name: s.Name,
	}
}

// Roll returns the sample circularly shifted by k observations. A negative k
// shifts observations toward the start, so Roll(-1) moves the second
// observation to the front row.
func (s *Sample) Roll(k int) *Sample {
	n, p := s.Dims()
	if n == 0 {
		return &Sample{Name: s.Name}
	}
	d := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		src := ((i-k)%n + n) % n
		for j := 0; j < p; j++ {
			d.Set(i, j, s.data.At(src, j))
		}
	}
	return &Sample{data: d, Name: s.Name}
}

// Finite reports whether every value in the sample is finite.
func (s *Sample) Finite() bool {
	n, p := s.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			v := s.data.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Copy creates a deep copy of the sample.
func (s *Sample) Copy() *Sample {
	if s == nil || s.data == nil {
		return &Sample{Name: s.Name}
	}
	return &Sample{data: mat.DenseCopyOf(s.data), Name: s.Name}
}
