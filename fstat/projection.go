package fstat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/errs"
)

// ResidualProjection builds the orthogonal projection onto the residual space
// of a design matrix: P = I - X(XᵀX)⁻¹Xᵀ for an m-by-p design X with full
// column rank. The result is m-by-m, symmetric, and idempotent; multiplying
// data by P removes the component explained by the model, leaving residuals.
//
// The projection is recomputed on every call and derived only from x; callers
// must not rely on caching.
//
// Returns:
//   - *mat.Dense: The m-by-m projection matrix.
//   - error: errs.ErrSingularDesign when XᵀX is not invertible, i.e. the
//     design is rank-deficient (collinear covariates).
func ResidualProjection(x *mat.Dense) (*mat.Dense, error) {
	m, _ := x.Dims()

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSingularDesign, err)
	}

	// hat = X (XᵀX)⁻¹ Xᵀ
	var tmp, hat mat.Dense
	tmp.Mul(x, &inv)
	hat.Mul(&tmp, x.T())

	proj := identity(m)
	proj.Sub(proj, &hat)

	return proj, nil
}

func identity(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}

	return d
}
