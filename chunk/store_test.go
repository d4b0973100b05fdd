package chunk

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genomere/covstats/compress"
	"github.com/genomere/covstats/errs"
	"github.com/genomere/covstats/rle"
)

func testMatrix(t *testing.T) *rle.Matrix {
	t.Helper()

	cols := []*rle.Vector{
		rle.Compress([]float64{0, 0, 3, 3, 3, 1}),
		rle.Compress([]float64{7, 7, 7, 7, 0, 0}),
		rle.Compress([]float64{1, 2, 3, 4, 5, 6}),
	}
	m, err := rle.NewMatrix(cols)
	require.NoError(t, err)

	return m
}

func requireSameMatrix(t *testing.T, want, got *rle.Matrix) {
	t.Helper()

	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr)
	require.Equal(t, wc, gc)
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			require.Equal(t,
				math.Float64bits(want.At(i, j)),
				math.Float64bits(got.At(i, j)),
				"element (%d,%d)", i, j)
		}
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		ctype compress.Type
	}{
		{name: "none", ctype: compress.TypeNone},
		{name: "zstd", ctype: compress.TypeZstd},
		{name: "s2", ctype: compress.TypeS2},
		{name: "lz4", ctype: compress.TypeLZ4},
	}

	m := testMatrix(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewFileStore(t.TempDir(), WithCompression(tt.ctype))
			require.NoError(t, err)

			require.NoError(t, store.Save("chr1:0-6", m))
			got, err := store.Load("chr1:0-6")
			require.NoError(t, err)
			requireSameMatrix(t, m, got)
		})
	}
}

func TestFileStore_LoadUsesFileCodec(t *testing.T) {
	// A file saved with one codec must load through a store configured with
	// another: the codec is recorded per file.
	dir := t.TempDir()
	m := testMatrix(t)

	writer, err := NewFileStore(dir, WithCompression(compress.TypeZstd))
	require.NoError(t, err)
	require.NoError(t, writer.Save("chr2:0-6", m))

	reader, err := NewFileStore(dir, WithCompression(compress.TypeNone))
	require.NoError(t, err)
	got, err := reader.Load("chr2:0-6")
	require.NoError(t, err)
	requireSameMatrix(t, m, got)
}

func TestFileStore_SaveReplaces(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first := testMatrix(t)
	require.NoError(t, store.Save("chr1:0-6", first))

	second, err := rle.NewMatrix([]*rle.Vector{rle.Constant(9, 4)})
	require.NoError(t, err)
	require.NoError(t, store.Save("chr1:0-6", second))

	got, err := store.Load("chr1:0-6")
	require.NoError(t, err)
	requireSameMatrix(t, second, got)
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("chrX:0-100")
	require.ErrorIs(t, err, errs.ErrChunkNotFound)
}

func TestFileStore_PathStability(t *testing.T) {
	a, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	b, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	// The file name depends only on the key, not the store.
	require.Equal(t,
		filepath.Base(a.Path("chr1:0-1000")),
		filepath.Base(b.Path("chr1:0-1000")))
	require.NotEqual(t,
		filepath.Base(a.Path("chr1:0-1000")),
		filepath.Base(a.Path("chr1:0-1001")))
	require.Equal(t, fileExt, filepath.Ext(a.Path("chr1:0-1000")))
}

func TestFileStore_CorruptFile(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save("chr1:0-6", testMatrix(t)))
	path := store.Path("chr1:0-6")

	t.Run("flipped payload byte", func(t *testing.T) {
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xFF
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		_, err = store.Load("chr1:0-6")
		require.ErrorIs(t, err, errs.ErrCorruptChunk)
	})

	t.Run("truncated header", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("COVCH"), 0o644))

		_, err := store.Load("chr1:0-6")
		require.ErrorIs(t, err, errs.ErrCorruptChunk)
	})

	t.Run("wrong magic", func(t *testing.T) {
		raw := make([]byte, headerSize+4)
		copy(raw, "NOTACHNK")
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		_, err := store.Load("chr1:0-6")
		require.ErrorIs(t, err, errs.ErrCorruptChunk)
	})

	t.Run("unsupported version", func(t *testing.T) {
		require.NoError(t, store.Save("chr1:0-6", testMatrix(t)))
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		raw[8] = 0x7F
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		_, err = store.Load("chr1:0-6")
		require.ErrorIs(t, err, errs.ErrCorruptChunk)
	})

	t.Run("unknown codec byte", func(t *testing.T) {
		require.NoError(t, store.Save("chr1:0-6", testMatrix(t)))
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		raw[9] = 0x7F
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		_, err = store.Load("chr1:0-6")
		require.ErrorIs(t, err, errs.ErrCorruptChunk)
	})
}

func TestNewFileStore_InvalidCompression(t *testing.T) {
	_, err := NewFileStore(t.TempDir(), WithCompression(compress.Type(0x7F)))
	require.Error(t, err)
}

func TestLoaderFunc(t *testing.T) {
	m := testMatrix(t)
	loader := LoaderFunc(func(key string) (*rle.Matrix, error) {
		require.Equal(t, "chr5:0-6", key)
		return m, nil
	})

	got, err := loader.Load("chr5:0-6")
	require.NoError(t, err)
	require.Same(t, m, got)
}
