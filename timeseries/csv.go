package timeseries

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumns []string // Column names for values; empty means all numeric columns
	HasHeader    bool     // Whether CSV has a header row (default: true)
	Delimiter    rune     // Field delimiter (default: ',')
	SkipRows     int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a sample from a CSV file. Each selected column becomes one
// dimension of the sample; each row becomes one observation.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a sample from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	// Resolve which columns hold values.
	var cols []int
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if len(opts.ValueColumns) == 0 {
				cols = append(cols, i)
				continue
			}
			for _, want := range opts.ValueColumns {
				if h == want {
					cols = append(cols, i)
					break
				}
			}
		}
		if len(cols) == 0 {
			return nil, errors.New("no matching value columns found in CSV header")
		}
	}

	var rows [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if cols == nil {
			// No header: every column is a value column.
			cols = make([]int, len(record))
			for i := range cols {
				cols[i] = i
			}
		}

		row := make([]float64, 0, len(cols))
		ok := true
		for _, c := range cols {
			if c >= len(record) {
				ok = false
				break
			}
			valStr := strings.TrimSpace(strings.Trim(record[c], "\""))
			if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
				ok = false
				break
			}
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				ok = false
				break
			}
			row = append(row, val)
		}
		if !ok {
			continue // Skip rows with missing or non-numeric values
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}
	return FromRows(rows)
}

// LoadCSVColumn loads a single named column from a CSV file as a scalar sample.
func LoadCSVColumn(filename, column string) (*Sample, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumns = []string{column}
	return LoadCSV(filename, opts)
}
