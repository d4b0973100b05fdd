package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a chunk key. The hash names chunk files on disk
// and keeps lookups independent of the key's length and characters.
func ID(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Sum64 computes the xxHash64 of a raw payload, used as the integrity
// checksum in chunk files.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
