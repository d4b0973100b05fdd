package fstat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/chunk"
	"github.com/genomere/covstats/errs"
	"github.com/genomere/covstats/rle"
)

// Compute calculates one F-statistic per feature of the coverage matrix,
// comparing the alternative model against the nested null model.
//
// Parameters:
//   - data: Coverage matrix, n features by m samples.
//   - modAlt: Alternative design matrix, m by p.
//   - modNull: Null design matrix, m by p0 with p0 < p and its column space
//     nested in the alternative's. Nesting beyond the column-count check is
//     the caller's responsibility.
//   - opts: Optional configuration (method, adjust term, scale factor, row
//     mask, warning sink).
//
// Returns:
//   - *rle.Vector: The F-statistics in run-length-compressed form, one value
//     per (selected) feature, in feature order.
//   - error: A configuration error (invalid method, negative scale factor or
//     adjust, non-nested column counts, dimension mismatch) rejected before
//     any computation, or errs.ErrSingularDesign from a rank-deficient
//     design. No partial results accompany an error.
//
// The call is pure with respect to its inputs and safe to invoke
// concurrently; degradation conditions (auto-sparse fallback, large-sample
// rle) never abort the call and are reported through the WithWarnings sink.
func Compute(data *rle.Matrix, modAlt, modNull *mat.Dense, opts ...Option) (*rle.Vector, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, fmt.Errorf("%w: nil coverage matrix", errs.ErrDimensionMismatch)
	}
	if cfg.rowMask != nil {
		data, err = data.SelectRows(cfg.rowMask)
		if err != nil {
			return nil, err
		}
	}

	n, m := data.Dims()
	mAlt, df1 := modAlt.Dims()
	mNull, df0 := modNull.Dims()
	if mAlt != m || mNull != m {
		return nil, fmt.Errorf("%w: coverage has %d samples, designs have %d and %d rows",
			errs.ErrDimensionMismatch, m, mAlt, mNull)
	}
	if df1 <= df0 {
		return nil, fmt.Errorf("%w: alternative has %d columns, null has %d",
			errs.ErrModelsNotNested, df1, df0)
	}

	projAlt, err := ResidualProjection(modAlt)
	if err != nil {
		return nil, fmt.Errorf("alternative model: %w", err)
	}
	projNull, err := ResidualProjection(modNull)
	if err != nil {
		return nil, fmt.Errorf("null model: %w", err)
	}

	effective, diag := selectMethod(cfg.method, projAlt, projNull)
	if diag != "" && cfg.warn != nil {
		cfg.warn(diag)
	}

	var engine rssEngine
	switch effective {
	case MethodDense:
		engine = denseEngine{data: data.Dense()}
	case methodSparse:
		engine = sparseEngine{data: sparseFromRle(data, cfg.scaleFactor), rows: n}
	case MethodRle:
		engine = rleEngine{data: data}
	default:
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidMethod, cfg.method)
	}

	rss1 := engine.residualSS(projAlt)
	rss0 := engine.residualSS(projNull)

	return fRatio(rss0, rss1, df1, df0, m, cfg.adjustF), nil
}

// ComputeChunk loads the coverage matrix for a chunk key and computes its
// F-statistics. It is the chunked-storage form of Compute: the key selects
// the features, so WithRowMask is normally not used with it.
func ComputeChunk(loader chunk.Loader, key string, modAlt, modNull *mat.Dense, opts ...Option) (*rle.Vector, error) {
	if loader == nil {
		return nil, errors.New("nil chunk loader")
	}

	data, err := loader.Load(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load chunk %q: %w", key, err)
	}

	return Compute(data, modAlt, modNull, opts...)
}

// fRatio applies the F-statistic formula elementwise on compressed vectors:
//
//	F = ((RSS0 - RSS1) / (df1 - df0)) / (adjust + RSS1 / (m - df1))
//
// Scalar constants broadcast across the runs, so the rle method's result
// stays compressed end to end. Division follows IEEE-754: a feature with
// RSS0 = RSS1 = 0 and adjust = 0 yields NaN.
func fRatio(rss0, rss1 *rle.Vector, df1, df0, m int, adjust float64) *rle.Vector {
	num := rss0.Sub(rss1).Scale(1 / float64(df1-df0))
	den := rss1.Scale(1 / float64(m-df1)).Shift(adjust)

	return num.Div(den)
}
