// Package fstat computes per-feature F-statistics comparing a nested pair of
// linear models over a coverage matrix.
//
// Given an n-by-m coverage matrix (n features, m samples), an alternative
// design matrix (m-by-p) and a null design matrix (m-by-p0, p > p0, with the
// null's column space nested in the alternative's), the package computes one
// F-statistic per feature:
//
//	F_i = ((RSS0_i - RSS1_i) / (p - p0)) / (adjust + RSS1_i / (m - p))
//
// where RSS1 and RSS0 are the per-feature residual sums of squares under the
// alternative and null models. Residuals are obtained by projecting the data
// through P = I - X(XᵀX)⁻¹Xᵀ for each design matrix X.
//
// # Methods
//
// Three interchangeable strategies compute the residual sums of squares, all
// agreeing within floating-point tolerance on equivalent input:
//
//   - MethodDense multiplies plain gonum matrices. Predictable memory cost of
//     n*m floats; the safe default for moderate n.
//   - MethodAutoSparse thresholds the coverage at log2(scale factor) and uses
//     compressed-sparse-column algebra. Requires both projection matrices to
//     have zero row sums (a design matrix with an intercept guarantees this);
//     otherwise the call falls back to dense and reports a warning.
//   - MethodRle never materializes a matrix. It combines the per-sample
//     run-length-compressed columns directly, at a cost of m*(m+1) compressed
//     sequence operations. Cost is independent of n but quadratic in m, so it
//     suits small sample counts (guideline: m <= 40).
//
// # Usage
//
//	fstats, err := fstat.Compute(cov, modAlt, modNull,
//	    fstat.WithScaleFactor(32),
//	    fstat.WithWarnings(func(msg string) { log.Println(msg) }),
//	)
//
// Every call is pure with respect to its inputs: projection matrices are
// rebuilt per call, nothing is cached, and no package state is mutated, so
// callers may fan out over chunks with ComputeChunk from any number of
// goroutines.
//
// Features whose coverage is constant across samples have RSS0 = RSS1 = 0
// and, with a zero adjust term, produce F = NaN (0/0). This is the expected
// degenerate result for uninformative features; callers typically filter
// such positions upstream or supply a positive adjust term.
package fstat
