package rle

import (
	"fmt"

	"github.com/genomere/covstats/errs"
)

// Vector is a run-length-compressed sequence of float64 values.
//
// It is stored as parallel slices of run values and run lengths. Adjacent
// runs never hold the same value and every run length is positive, so the
// representation of any sequence is canonical: two Vectors holding the same
// logical sequence are structurally identical. NaN values are the one
// exception; NaN never compares equal to itself, so consecutive NaNs occupy
// single-element runs.
type Vector struct {
	values  []float64
	lengths []int
	total   int
}

// New creates a Vector from explicit run values and lengths.
//
// The two slices must have the same length and every run length must be
// positive. Runs with equal adjacent values are merged so the result is
// canonical.
//
// Returns:
//   - *Vector: The constructed vector.
//   - error: errs.ErrInvalidRuns if the run data is malformed.
func New(values []float64, lengths []int) (*Vector, error) {
	if len(values) != len(lengths) {
		return nil, fmt.Errorf("%w: %d values but %d lengths", errs.ErrInvalidRuns, len(values), len(lengths))
	}

	v := &Vector{
		values:  make([]float64, 0, len(values)),
		lengths: make([]int, 0, len(lengths)),
	}
	for i := range values {
		if lengths[i] <= 0 {
			return nil, fmt.Errorf("%w: run %d has non-positive length %d", errs.ErrInvalidRuns, i, lengths[i])
		}
		v.appendRun(values[i], lengths[i])
	}

	return v, nil
}

// Compress run-length encodes a flat sequence. The round trip through
// Decompress reproduces the input exactly.
func Compress(values []float64) *Vector {
	v := &Vector{}
	i := 0
	for i < len(values) {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}
		v.values = append(v.values, values[i])
		v.lengths = append(v.lengths, j-i)
		v.total += j - i
		i = j
	}

	return v
}

// Constant creates a Vector of n copies of value. n must be non-negative;
// n = 0 yields an empty vector.
func Constant(value float64, n int) *Vector {
	if n <= 0 {
		return &Vector{}
	}

	return &Vector{
		values:  []float64{value},
		lengths: []int{n},
		total:   n,
	}
}

// appendRun extends the vector by one run, merging with the trailing run when
// the values are equal.
func (v *Vector) appendRun(value float64, length int) {
	if n := len(v.values); n > 0 && v.values[n-1] == value {
		v.lengths[n-1] += length
	} else {
		v.values = append(v.values, value)
		v.lengths = append(v.lengths, length)
	}
	v.total += length
}

// Len returns the decompressed length of the sequence.
func (v *Vector) Len() int {
	return v.total
}

// Runs returns the number of runs in the compressed representation.
func (v *Vector) Runs() int {
	return len(v.values)
}

// At returns the value at position i. It panics if i is out of range.
func (v *Vector) At(i int) float64 {
	if i < 0 || i >= v.total {
		panic(fmt.Sprintf("rle: index %d out of range [0,%d)", i, v.total))
	}
	for r := range v.values {
		if i < v.lengths[r] {
			return v.values[r]
		}
		i -= v.lengths[r]
	}

	// Unreachable: total equals the sum of run lengths.
	panic("rle: corrupted run lengths")
}

// Decompress expands the sequence into a flat slice. The returned slice is
// newly allocated and owned by the caller.
func (v *Vector) Decompress() []float64 {
	out := make([]float64, 0, v.total)
	for r := range v.values {
		for k := 0; k < v.lengths[r]; k++ {
			out = append(out, v.values[r])
		}
	}

	return out
}

// Do calls fn once per run, in order.
func (v *Vector) Do(fn func(value float64, length int)) {
	for r := range v.values {
		fn(v.values[r], v.lengths[r])
	}
}

// Values returns a copy of the run values.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)

	return out
}

// Lengths returns a copy of the run lengths.
func (v *Vector) Lengths() []int {
	out := make([]int, len(v.lengths))
	copy(out, v.lengths)

	return out
}

// binary applies op elementwise to v and o by walking both run lists in a
// single merge pass. The cost is proportional to the combined run counts,
// independent of the decompressed length.
func (v *Vector) binary(o *Vector, op func(a, b float64) float64) *Vector {
	if v.total != o.total {
		panic(fmt.Sprintf("rle: length mismatch: %d != %d", v.total, o.total))
	}

	out := &Vector{
		values:  make([]float64, 0, max(len(v.values), len(o.values))),
		lengths: make([]int, 0, max(len(v.lengths), len(o.lengths))),
	}

	i, j := 0, 0
	ri, rj := 0, 0 // elements consumed from the current run of v and o
	for i < len(v.values) && j < len(o.values) {
		n := min(v.lengths[i]-ri, o.lengths[j]-rj)
		out.appendRun(op(v.values[i], o.values[j]), n)

		ri += n
		rj += n
		if ri == v.lengths[i] {
			i++
			ri = 0
		}
		if rj == o.lengths[j] {
			j++
			rj = 0
		}
	}

	return out
}

// unary applies op to every run value, preserving run boundaries except where
// op maps distinct values to the same result, in which case runs merge.
func (v *Vector) unary(op func(a float64) float64) *Vector {
	out := &Vector{
		values:  make([]float64, 0, len(v.values)),
		lengths: make([]int, 0, len(v.lengths)),
	}
	for r := range v.values {
		out.appendRun(op(v.values[r]), v.lengths[r])
	}

	return out
}

// Add returns the elementwise sum v + o.
// It panics if the vectors have different lengths.
func (v *Vector) Add(o *Vector) *Vector {
	return v.binary(o, func(a, b float64) float64 { return a + b })
}

// Sub returns the elementwise difference v - o.
// It panics if the vectors have different lengths.
func (v *Vector) Sub(o *Vector) *Vector {
	return v.binary(o, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise product v * o.
// It panics if the vectors have different lengths.
func (v *Vector) Mul(o *Vector) *Vector {
	return v.binary(o, func(a, b float64) float64 { return a * b })
}

// Div returns the elementwise quotient v / o. Division follows IEEE-754:
// x/0 is ±Inf for non-zero x and 0/0 is NaN.
// It panics if the vectors have different lengths.
func (v *Vector) Div(o *Vector) *Vector {
	return v.binary(o, func(a, b float64) float64 { return a / b })
}

// Scale returns v with every element multiplied by c.
func (v *Vector) Scale(c float64) *Vector {
	return v.unary(func(a float64) float64 { return a * c })
}

// Shift returns v with c added to every element.
func (v *Vector) Shift(c float64) *Vector {
	return v.unary(func(a float64) float64 { return a + c })
}
