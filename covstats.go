// Package covstats computes per-feature F-statistics over genomic coverage
// matrices, comparing a nested pair of linear models across a large number of
// genomic positions.
//
// The input is an n-by-m coverage matrix (n features, m samples) held in
// run-length-compressed column form, plus two design matrices: an alternative
// model and a null model nested inside it. The output is one F-statistic per
// feature, returned as a compressed sequence because adjacent positions on a
// genome frequently share the same residual coverage pattern.
//
// # Basic usage
//
//	cov, _ := rle.MatrixFromDense(coverage) // n features x m samples
//	modAlt := mat.NewDense(m, 2, altDesign) // intercept + condition
//	modNull := mat.NewDense(m, 1, nullDesign)
//
//	fstats, err := covstats.FStats(cov, modAlt, modNull)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, f := range fstats.Decompress() {
//	    fmt.Printf("feature %d: F = %g\n", i, f)
//	}
//
// # Chunked processing
//
// Whole-genome runs split the features into chunks, one file each, and fan
// the chunks out to workers. Every computation is pure with respect to its
// inputs, so workers need no coordination beyond reading distinct chunks:
//
//	store, _ := covstats.NewFileStore("coverage-chunks")
//	fstats, err := covstats.FStatsChunk(store, "chr1:1-100000", modAlt, modNull)
//
// # Package structure
//
// This package provides convenience wrappers over the fstat package, which
// holds the statistical core (projection matrices, the three residual
// computation methods, method selection), the rle package (compressed
// sequences and matrices), and the chunk package (file-backed chunk storage).
// Use those packages directly for fine-grained control.
package covstats

import (
	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/chunk"
	"github.com/genomere/covstats/fstat"
	"github.com/genomere/covstats/internal/hash"
	"github.com/genomere/covstats/rle"
)

// FStats computes one F-statistic per feature of the coverage matrix. See
// fstat.Compute for the full contract and the available options.
//
// Example:
//
//	fstats, err := covstats.FStats(cov, modAlt, modNull,
//	    fstat.WithMethodName("rle"),
//	    fstat.WithAdjustF(0.5),
//	)
func FStats(data *rle.Matrix, modAlt, modNull *mat.Dense, opts ...fstat.Option) (*rle.Vector, error) {
	return fstat.Compute(data, modAlt, modNull, opts...)
}

// FStatsChunk loads one chunk of coverage through the loader and computes its
// F-statistics. See fstat.ComputeChunk.
func FStatsChunk(loader chunk.Loader, key string, modAlt, modNull *mat.Dense, opts ...fstat.Option) (*rle.Vector, error) {
	return fstat.ComputeChunk(loader, key, modAlt, modNull, opts...)
}

// NewFileStore opens a directory-backed chunk store with default settings
// (LZ4-compressed chunk files). See chunk.NewFileStore for options.
func NewFileStore(dir string, opts ...chunk.StoreOption) (*chunk.FileStore, error) {
	return chunk.NewFileStore(dir, opts...)
}

// ChunkID returns the 64-bit hash a chunk key maps to; chunk files are named
// by this value in hexadecimal. Exposed for tooling that inspects store
// directories.
func ChunkID(key string) uint64 {
	return hash.ID(key)
}
