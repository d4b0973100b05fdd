package fstat

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/rle"
)

// sparseEngine computes RSS with sparse linear algebra over the thresholded
// coverage. The formula is identical to the dense engine's; results may
// differ from dense in the last few significant digits because the
// projection's row sums are only numerically zero, which is documented and
// expected rather than a defect.
type sparseEngine struct {
	data *sparse.CSC
	rows int
}

func (e sparseEngine) residualSS(proj *mat.Dense) *rle.Vector {
	resid := &sparse.CSR{}
	resid.Mul(e.data, proj)

	rss := make([]float64, e.rows)
	resid.DoNonZero(func(i, _ int, v float64) {
		rss[i] += v * v
	})

	return rle.Compress(rss)
}
