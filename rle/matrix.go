package rle

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/errs"
)

// Matrix is a coverage matrix stored column-by-column as compressed vectors.
//
// Rows index features (genomic positions) and columns index samples, so each
// column is one sample's coverage track over the features. Column storage
// matches how coverage data compresses: runs of identical depth occur along
// the genome, within a sample.
//
// A Matrix is immutable after construction.
type Matrix struct {
	rows int
	cols []*Vector
}

// NewMatrix creates a Matrix from per-sample column vectors. At least one
// column is required and all columns must have the same length.
func NewMatrix(cols []*Vector) (*Matrix, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one column", errs.ErrInvalidRuns)
	}

	rows := cols[0].Len()
	for j, col := range cols {
		if col.Len() != rows {
			return nil, fmt.Errorf("%w: column %d has length %d, want %d",
				errs.ErrDimensionMismatch, j, col.Len(), rows)
		}
	}

	m := &Matrix{rows: rows, cols: make([]*Vector, len(cols))}
	copy(m.cols, cols)

	return m, nil
}

// MatrixFromDense compresses a dense matrix column by column. The conversion
// is exact: Dense inverts it bit for bit.
func MatrixFromDense(d *mat.Dense) (*Matrix, error) {
	rows, cols := d.Dims()
	if cols == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one column", errs.ErrInvalidRuns)
	}

	buf := make([]float64, rows)
	vectors := make([]*Vector, cols)
	for j := 0; j < cols; j++ {
		mat.Col(buf, j, d)
		vectors[j] = Compress(buf)
	}

	return NewMatrix(vectors)
}

// Dims returns the number of features (rows) and samples (columns).
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, len(m.cols)
}

// Column returns the compressed coverage track of sample j.
// It panics if j is out of range.
func (m *Matrix) Column(j int) *Vector {
	return m.cols[j]
}

// At returns the coverage value of feature i in sample j.
func (m *Matrix) At(i, j int) float64 {
	return m.cols[j].At(i)
}

// Dense materializes every element into a plain gonum matrix, preserving the
// value at every row/column position.
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, len(m.cols), nil)
	for j, col := range m.cols {
		i := 0
		col.Do(func(value float64, length int) {
			for k := 0; k < length; k++ {
				d.Set(i+k, j, value)
			}
			i += length
		})
	}

	return d
}

// SelectRows returns a new Matrix holding only the features where mask is
// true, in their original order. The mask length must equal the row count.
func (m *Matrix) SelectRows(mask []bool) (*Matrix, error) {
	if len(mask) != m.rows {
		return nil, fmt.Errorf("%w: mask length %d, want %d rows",
			errs.ErrDimensionMismatch, len(mask), m.rows)
	}

	kept := 0
	for _, keep := range mask {
		if keep {
			kept++
		}
	}
	if kept == 0 {
		return nil, fmt.Errorf("%w: row mask selects no features", errs.ErrInvalidRuns)
	}

	cols := make([]*Vector, len(m.cols))
	for j, col := range m.cols {
		sub := &Vector{
			values:  make([]float64, 0, col.Runs()),
			lengths: make([]int, 0, col.Runs()),
		}
		i := 0
		col.Do(func(value float64, length int) {
			run := 0
			for k := 0; k < length; k++ {
				if mask[i+k] {
					run++
				} else if run > 0 {
					sub.appendRun(value, run)
					run = 0
				}
			}
			if run > 0 {
				sub.appendRun(value, run)
			}
			i += length
		})
		cols[j] = sub
	}

	return NewMatrix(cols)
}
