package fstat

import (
	"math"

	"github.com/james-bowman/sparse"

	"github.com/genomere/covstats/rle"
)

// sparseThreshold returns the cutoff tau applied before sparse computation:
// log2 of the scale factor when positive, otherwise 0. The upstream coverage
// pipeline stores log2-scaled values, so coverage at or below the scale
// factor's log carries no signal and becomes an implicit zero.
func sparseThreshold(scaleFactor float64) float64 {
	if scaleFactor > 0 {
		return math.Log2(scaleFactor)
	}

	return 0
}

// sparseFromRle converts a coverage matrix into compressed-sparse-column
// form, keeping only the entries strictly greater than the threshold and
// storing them shifted down by it. Entry order is preserved: row i, column j
// refer to the same feature and sample before and after.
//
// The transform is deterministic and, for tau = 0 and non-negative coverage,
// lossless: exactly the strictly positive entries survive, unshifted.
func sparseFromRle(m *rle.Matrix, scaleFactor float64) *sparse.CSC {
	n, s := m.Dims()
	tau := sparseThreshold(scaleFactor)

	var (
		rows []int
		cols []int
		data []float64
	)
	for j := 0; j < s; j++ {
		row := 0
		m.Column(j).Do(func(value float64, length int) {
			if value > tau {
				for k := 0; k < length; k++ {
					rows = append(rows, row+k)
					cols = append(cols, j)
					data = append(data, value-tau)
				}
			}
			row += length
		})
	}

	return sparse.NewCOO(n, s, rows, cols, data).ToCSC()
}
