package compress

// ZstdCodec compresses payloads with Zstandard. Best compression ratio of
// the available codecs; use it when chunk files are written once and read
// over slow storage.
//
// The Compress and Decompress methods are implemented in zstd_cgo.go (cgo
// builds, valyala/gozstd) and zstd_pure.go (pure-Go builds,
// klauspost/compress/zstd). The two implementations produce interchangeable
// frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
