// Package chunk stores and loads coverage matrices split across files.
//
// Large genomes are processed one chunk of features at a time, with an
// external scheduler fanning chunks out to workers. Each chunk is one file in
// a store directory, keyed by an arbitrary string (typically
// "chromosome:start-end"); workers load distinct chunks, so reads need no
// coordination.
//
// # File format
//
// A chunk file is a fixed 18-byte header followed by a compressed payload:
//
//	offset  size  field
//	0       8     magic "COVCHNK1"
//	8       1     format version (currently 1)
//	9       1     compression type (see compress.Type)
//	10      8     xxHash64 of the uncompressed payload, little-endian
//	18      -     compressed payload
//
// The payload serializes an rle.Matrix: uvarint row and column counts, then
// per column a uvarint run count and the runs as uvarint length plus
// little-endian IEEE-754 value bits. Run-length encoding plus payload
// compression keeps chunk files small for the long constant stretches typical
// of coverage data.
//
// Loading validates the magic, version, and checksum; any failure is reported
// as errs.ErrCorruptChunk, and a missing key as errs.ErrChunkNotFound.
package chunk
