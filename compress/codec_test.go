package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayloads(t *testing.T) map[string][]byte {
	t.Helper()

	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 4096)
	_, err := rng.Read(random)
	require.NoError(t, err)

	return map[string][]byte{
		"empty":      {},
		"tiny":       []byte{0x42},
		"text":       bytes.Repeat([]byte("coverage run "), 300),
		"zeros":      make([]byte, 8192),
		"random":     random,
		"one varint": {0x05, 0x01, 0x03},
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	types := []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4}
	payloads := testPayloads(t)

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			for name, payload := range payloads {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err, "payload %q", name)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err, "payload %q", name)
				require.Equal(t, payload, decompressed, "payload %q", name)
			}
		})
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, 4096)

	for _, ct := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		ctype    Type
		expected string
	}{
		{ctype: TypeNone, expected: "None"},
		{ctype: TypeZstd, expected: "Zstd"},
		{ctype: TypeS2, expected: "S2"},
		{ctype: TypeLZ4, expected: "LZ4"},
		{ctype: Type(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.ctype.String())
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(Type(0x7F))
	require.Error(t, err)
}
