package covstats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/genomere/covstats"
	"github.com/genomere/covstats/errs"
	"github.com/genomere/covstats/fstat"
	"github.com/genomere/covstats/rle"
)

func twoGroupScenario(t *testing.T) (data *rle.Matrix, modAlt, modNull *mat.Dense) {
	t.Helper()

	d := mat.NewDense(4, 4, []float64{
		1, 2, 3, 4,
		4, 3, 2, 1,
		5, 5, 5, 5,
		0, 0, 0, 0,
	})
	data, err := rle.MatrixFromDense(d)
	require.NoError(t, err)

	modAlt = mat.NewDense(4, 2, []float64{
		1, 0,
		1, 0,
		1, 1,
		1, 1,
	})
	modNull = mat.NewDense(4, 1, []float64{1, 1, 1, 1})

	return data, modAlt, modNull
}

func TestFStats(t *testing.T) {
	data, modAlt, modNull := twoGroupScenario(t)

	fstats, err := covstats.FStats(data, modAlt, modNull,
		fstat.WithMethodName("dense"))
	require.NoError(t, err)

	got := fstats.Decompress()
	require.InDelta(t, 8, got[0], 1e-6)
	require.InDelta(t, 8, got[1], 1e-6)
	require.True(t, math.IsNaN(got[2]))
	require.True(t, math.IsNaN(got[3]))
}

func TestFStatsChunk(t *testing.T) {
	data, modAlt, modNull := twoGroupScenario(t)

	store, err := covstats.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save("chr1:0-4", data))

	direct, err := covstats.FStats(data, modAlt, modNull)
	require.NoError(t, err)
	viaChunk, err := covstats.FStatsChunk(store, "chr1:0-4", modAlt, modNull)
	require.NoError(t, err)

	dv, cv := direct.Decompress(), viaChunk.Decompress()
	require.Len(t, cv, len(dv))
	for i := range dv {
		require.Equal(t, math.Float64bits(dv[i]), math.Float64bits(cv[i]),
			"feature %d", i)
	}

	_, err = covstats.FStatsChunk(store, "chr2:0-4", modAlt, modNull)
	require.ErrorIs(t, err, errs.ErrChunkNotFound)
}

func TestChunkID(t *testing.T) {
	require.Equal(t, covstats.ChunkID("chr1:0-4"), covstats.ChunkID("chr1:0-4"))
	require.NotEqual(t, covstats.ChunkID("chr1:0-4"), covstats.ChunkID("chr2:0-4"))
}
