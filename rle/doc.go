// Package rle implements run-length-compressed numeric sequences and the
// column-oriented coverage matrices built from them.
//
// Genomic coverage tracks are long and highly repetitive: adjacent bases
// frequently share the same read depth, so a sequence of millions of values
// often collapses to a few thousand (value, run-length) pairs. Vector stores
// exactly that pair list and supports elementwise arithmetic, scalar
// broadcast, and exact decompression, which lets the statistical core operate
// on compressed data without ever materializing a flat vector.
//
// # Vector
//
//	v := rle.Compress([]float64{0, 0, 0, 2, 2, 5})
//	w := v.Scale(0.5).Shift(1)        // scalar broadcast
//	sum := v.Add(w)                   // run-aligned elementwise arithmetic
//	flat := sum.Decompress()          // exact expansion
//
// Binary operations require both operands to have the same total length and
// panic otherwise, mirroring gonum/mat's behavior for shape errors. All
// operations return new vectors; a Vector is never mutated after
// construction, so sharing across goroutines is safe.
//
// # Matrix
//
// Matrix is a coverage matrix stored as one compressed Vector per sample
// column. Rows are features (genomic positions), columns are samples. It
// converts losslessly to and from a dense gonum matrix and supports row
// subsetting by boolean mask.
package rle
