package fstat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/rle"
)

// rssEngine computes the per-feature residual sum of squares of one data
// representation against a projection matrix. One implementation per
// effective method; selectMethod decides which one runs.
//
// residualSS is called twice per F-statistic computation, once with each
// model's projection, and must not retain state between calls. The result is
// always returned in run-length-compressed form so the F-ratio arithmetic is
// uniform across methods.
type rssEngine interface {
	residualSS(proj *mat.Dense) *rle.Vector
}
