package fstat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/rle"
)

// rleEngine computes RSS directly on the run-length-compressed columns,
// never materializing a dense or sparse matrix.
//
// For each sample k, the k-th column of the residual matrix data * P is the
// weighted sum over samples j of column_j * P[j,k], itself a compressed
// sequence. Squaring each residual column and summing over k yields the RSS
// sequence. That is m*(m+1) compressed-sequence operations for m samples;
// runtime is dominated by run-merge cost rather than feature count, which is
// why this method pays off on long, repetitive coverage with few samples.
type rleEngine struct {
	data *rle.Matrix
}

func (e rleEngine) residualSS(proj *mat.Dense) *rle.Vector {
	n, m := e.data.Dims()

	rss := rle.Constant(0, n)
	for k := 0; k < m; k++ {
		resid := rle.Constant(0, n)
		for j := 0; j < m; j++ {
			resid = resid.Add(e.data.Column(j).Scale(proj.At(j, k)))
		}
		rss = rss.Add(resid.Mul(resid))
	}

	return rss
}
