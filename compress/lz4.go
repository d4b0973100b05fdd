package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Pool reuses lz4.Compressor instances; the compressor keeps an internal
// hash table that benefits from reuse across payloads.
var lz4Pool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Payloads are prefixed with one flag byte. CompressBlock signals
// incompressible input by returning zero bytes, and such payloads are stored
// raw so the round trip stays lossless.
const (
	lz4FlagRaw   = 0x0
	lz4FlagBlock = 0x1
)

// LZ4Codec compresses payloads with LZ4 block compression. It is the chunk
// store default: decompression speed dominates chunk loading, and LZ4
// decompresses fastest of the available codecs.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses the payload as a single LZ4 block. Incompressible
// payloads are stored raw.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))
	dst[0] = lz4FlagBlock

	lc, _ := lz4Pool.Get().(*lz4.Compressor)
	defer lz4Pool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		dst[0] = lz4FlagRaw

		return append(dst[:1], data...), nil
	}

	return dst[:1+n], nil
}

// Decompress recovers an LZ4 payload written by Compress.
//
// The block format does not record the decompressed size, so the buffer
// starts at 4x the compressed size and doubles on short-buffer errors, up to
// a 128MB ceiling that guards against corrupted headers.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case lz4FlagRaw:
		out := make([]byte, len(data)-1)
		copy(out, data[1:])

		return out, nil
	case lz4FlagBlock:
		// handled below
	default:
		return nil, fmt.Errorf("invalid lz4 payload flag: %#x", data[0])
	}
	data = data[1:]

	const maxSize = 128 * 1024 * 1024

	bufSize := len(data) * 4
	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
