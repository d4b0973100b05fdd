// Package compress provides the payload codecs used by the chunk store.
//
// Chunk files hold run-length-encoded coverage columns. The encoding already
// removes most redundancy along the genome, but run values and varint run
// lengths still compress well with general-purpose algorithms, so the store
// applies one of these codecs to the whole payload:
//
//   - None: no compression, fastest round trip
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio (store default)
//
// All codecs are safe for concurrent use; internal encoder/decoder state is
// pooled per call.
//
// The Zstd codec has two implementations selected at build time: a cgo
// binding (valyala/gozstd) when cgo is available and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both read each other's output.
package compress
