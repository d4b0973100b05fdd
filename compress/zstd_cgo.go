//go:build cgo

package compress

import "github.com/valyala/gozstd"

// zstdLevel is the compression level for chunk payloads. Level 3 matches the
// zstd CLI default and the pure-Go implementation's SpeedDefault.
const zstdLevel = 3

// Compress compresses the payload with the libzstd binding.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress recovers a Zstandard frame with the libzstd binding.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
