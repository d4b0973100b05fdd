package compress

import "fmt"

// Type identifies a payload compression algorithm. The value is stored
// verbatim in the chunk file header, so constants must not be renumbered.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores payloads uncompressed.
	TypeZstd Type = 0x2 // TypeZstd is Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 is S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 is LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a chunk payload.
type Compressor interface {
	// Compress returns the compressed form of data. The returned slice is
	// newly allocated (the NoOp codec excepted) and the input is not
	// modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers a chunk payload compressed with the matching
// algorithm. Corrupted or mismatched input yields an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given type.
//
// Returns:
//   - Codec: The codec instance, shared and safe for concurrent use.
//   - error: An error for unknown compression types.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
