// Package errs defines the sentinel errors shared across covstats packages.
//
// Callers can match them with errors.Is after any amount of wrapping:
//
//	fstats, err := fstat.Compute(data, modAlt, modNull)
//	if errors.Is(err, errs.ErrSingularDesign) {
//	    // fix the design matrix and retry
//	}
package errs

import "errors"

// Configuration errors. These are rejected before any computation starts and
// are never transient: retrying the same call cannot succeed.
var (
	// ErrInvalidMethod indicates an unknown computation method was requested.
	ErrInvalidMethod = errors.New("invalid computation method")

	// ErrNegativeScaleFactor indicates a scale factor below zero.
	ErrNegativeScaleFactor = errors.New("scale factor must be non-negative")

	// ErrNegativeAdjust indicates a negative F-statistic adjustment term.
	ErrNegativeAdjust = errors.New("adjust term must be non-negative")

	// ErrModelsNotNested indicates the alternative design matrix does not have
	// strictly more columns than the null design matrix.
	ErrModelsNotNested = errors.New("models are not strictly nested")

	// ErrDimensionMismatch indicates incompatible matrix dimensions, e.g. a
	// coverage matrix whose sample count differs from the design matrix rows.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Numerical errors. These surface mid-computation and abort the call; no
// partial result is returned.
var (
	// ErrSingularDesign indicates a rank-deficient design matrix whose
	// cross-product cannot be inverted (e.g. collinear covariates).
	ErrSingularDesign = errors.New("singular design matrix")
)

// Data errors.
var (
	// ErrInvalidRuns indicates malformed run-length data, such as mismatched
	// value/length slices or a non-positive run length.
	ErrInvalidRuns = errors.New("invalid run-length data")

	// ErrChunkNotFound indicates the chunk store has no entry for the key.
	ErrChunkNotFound = errors.New("chunk not found")

	// ErrCorruptChunk indicates a chunk file failed structural validation or
	// its integrity checksum.
	ErrCorruptChunk = errors.New("corrupt chunk data")

	// ErrKeyCollision indicates two distinct chunk keys hash to the same file
	// name, which would make one chunk silently overwrite the other.
	ErrKeyCollision = errors.New("chunk key hash collision")
)
