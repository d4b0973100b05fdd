package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	// Reference vectors for xxHash64 with seed 0.
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
	require.Equal(t, uint64(0x4fdcca5ddb678139), ID("test"))

	// File naming relies on ID being stable and key-sensitive.
	require.Equal(t, ID("chr1:0-1000"), ID("chr1:0-1000"))
	require.NotEqual(t, ID("chr1:0-1000"), ID("chr1:0-1001"))
	require.NotEqual(t, ID("chr1:0-1000"), ID("chr2:0-1000"))
}

func TestID_MatchesSum64(t *testing.T) {
	// Key hashing and payload checksumming are the same function; a chunk key
	// hashed as a string or as raw bytes must agree.
	for _, key := range []string{"", "chr1:0-1000", "chrX:123456-234567"} {
		require.Equal(t, Sum64([]byte(key)), ID(key), "key %q", key)
	}
}

func BenchmarkID(b *testing.B) {
	const key = "chr12:34500000-34600000"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ID(key)
	}
}
