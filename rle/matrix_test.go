package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats/errs"
)

func testCoverage(t *testing.T) *Matrix {
	t.Helper()

	// 6 features x 3 samples with coverage-typical constant stretches.
	d := mat.NewDense(6, 3, []float64{
		0, 2, 1,
		0, 2, 1,
		0, 2, 4,
		5, 2, 4,
		5, 0, 4,
		5, 0, 0,
	})
	m, err := MatrixFromDense(d)
	require.NoError(t, err)

	return m
}

func TestMatrixFromDense_RoundTrip(t *testing.T) {
	m := testCoverage(t)

	rows, cols := m.Dims()
	require.Equal(t, 6, rows)
	require.Equal(t, 3, cols)

	// Columns compress along the genome.
	require.Equal(t, 2, m.Column(0).Runs())
	require.Equal(t, 2, m.Column(1).Runs())
	require.Equal(t, 3, m.Column(2).Runs())

	back := m.Dense()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.Equal(t, m.At(i, j), back.At(i, j), "element (%d,%d)", i, j)
		}
	}
}

func TestNewMatrix_Validation(t *testing.T) {
	t.Run("no columns", func(t *testing.T) {
		_, err := NewMatrix(nil)
		require.ErrorIs(t, err, errs.ErrInvalidRuns)
	})

	t.Run("ragged columns", func(t *testing.T) {
		_, err := NewMatrix([]*Vector{Constant(1, 4), Constant(2, 5)})
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})
}

func TestMatrix_SelectRows(t *testing.T) {
	m := testCoverage(t)

	sub, err := m.SelectRows([]bool{true, false, true, true, false, true})
	require.NoError(t, err)

	rows, cols := sub.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 3, cols)

	// Kept rows are 0, 2, 3, 5 of the original, in order.
	want := [][]float64{
		{0, 2, 1},
		{0, 2, 4},
		{5, 2, 4},
		{5, 0, 0},
	}
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], sub.At(i, j), "element (%d,%d)", i, j)
		}
	}
}

func TestMatrix_SelectRows_Errors(t *testing.T) {
	m := testCoverage(t)

	t.Run("mask length mismatch", func(t *testing.T) {
		_, err := m.SelectRows([]bool{true, false})
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("empty selection", func(t *testing.T) {
		_, err := m.SelectRows(make([]bool, 6))
		require.ErrorIs(t, err, errs.ErrInvalidRuns)
	})
}

func TestMatrix_SelectRows_MergesAcrossGaps(t *testing.T) {
	col := Compress([]float64{7, 1, 7, 7, 1, 7})
	m, err := NewMatrix([]*Vector{col})
	require.NoError(t, err)

	// Dropping the 1s leaves four 7s that must collapse to a single run.
	sub, err := m.SelectRows([]bool{true, false, true, true, false, true})
	require.NoError(t, err)
	require.Equal(t, 1, sub.Column(0).Runs())
	require.Equal(t, 4, sub.Column(0).Len())
}
