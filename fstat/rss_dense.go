package fstat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/rle"
)

// denseEngine computes RSS with plain matrix arithmetic: the residual matrix
// is data * P and each feature's RSS is the squared norm of its row.
type denseEngine struct {
	data *mat.Dense
}

func (e denseEngine) residualSS(proj *mat.Dense) *rle.Vector {
	n, _ := e.data.Dims()

	var resid mat.Dense
	resid.Mul(e.data, proj)

	rss := make([]float64, n)
	for i := 0; i < n; i++ {
		row := resid.RawRowView(i)
		sum := 0.0
		for _, v := range row {
			sum += v * v
		}
		rss[i] = sum
	}

	return rle.Compress(rss)
}
