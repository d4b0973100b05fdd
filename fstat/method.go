package fstat

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/errs"
)

// Method selects the residual-sum-of-squares computation strategy.
type Method uint8

const (
	// MethodAutoSparse requests sparse-matrix algebra on thresholded
	// coverage, falling back to MethodDense when the projection matrices
	// have non-zero row sums. The default.
	MethodAutoSparse Method = 0x1

	// MethodDense requests plain dense matrix algebra.
	MethodDense Method = 0x2

	// MethodRle requests arithmetic directly on the run-length-compressed
	// columns, never materializing a matrix. Quadratic in sample count.
	MethodRle Method = 0x3

	// methodSparse is the effective strategy MethodAutoSparse resolves to
	// when the projection row-sum check passes. It is not requestable
	// directly; the fallback decision always runs.
	methodSparse Method = 0x4
)

func (m Method) String() string {
	switch m {
	case MethodAutoSparse:
		return "auto-sparse"
	case MethodDense:
		return "dense"
	case MethodRle:
		return "rle"
	case methodSparse:
		return "sparse"
	default:
		return "Unknown"
	}
}

// MethodFromString parses a method name. Accepted names are "auto-sparse",
// "dense", and "rle" (alias "compressed"), case-insensitively.
func MethodFromString(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "auto-sparse":
		return MethodAutoSparse, nil
	case "dense":
		return MethodDense, nil
	case "rle", "compressed":
		return MethodRle, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidMethod, name)
	}
}

// rleSampleLimit is the sample count beyond which MethodRle's m*(m+1)
// sequence-operation schedule is reported as a performance concern.
const rleSampleLimit = 40

// selectMethod resolves the requested method into the effective one, given
// the two projection matrices. It is a pure decision function: the returned
// diagnostic (empty when there is nothing to report) is handed to the
// caller's warning sink, never logged here.
func selectMethod(requested Method, pAlt, pNull *mat.Dense) (Method, string) {
	switch requested {
	case MethodAutoSparse:
		rowSumAlt := round4(maxAbsRowSum(pAlt))
		rowSumNull := round4(maxAbsRowSum(pNull))
		if rowSumAlt == 0 && rowSumNull == 0 {
			return methodSparse, ""
		}

		return MethodDense, "row sums of the projection matrices are not 0; " +
			"this occurs when a design matrix lacks an intercept term; falling back to the dense method"
	case MethodRle:
		if m, _ := pAlt.Dims(); m > rleSampleLimit {
			return MethodRle, fmt.Sprintf(
				"the rle method performs m*(m+1) compressed-sequence operations and m = %d; "+
					"consider the dense method for more than %d samples", m, rleSampleLimit)
		}

		return MethodRle, ""
	default:
		return requested, ""
	}
}

// maxAbsRowSum returns max_i |Σ_j p[i,j]|. For a projection complement built
// from a design with an intercept this is zero up to rounding error.
func maxAbsRowSum(p *mat.Dense) float64 {
	rows, cols := p.Dims()
	maxSum := 0.0
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += p.At(i, j)
		}
		if abs := math.Abs(sum); abs > maxSum {
			maxSum = abs
		}
	}

	return maxSum
}

// round4 rounds to 4 decimal places, the tolerance of the row-sum check.
func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
