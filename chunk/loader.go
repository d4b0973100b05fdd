package chunk

import "github.com/genomere/covstats/rle"

// Loader resolves a chunk key to its coverage matrix.
//
// FileStore is the built-in implementation; callers with coverage in other
// storage systems (object stores, databases) supply their own. Implementations
// must be safe for concurrent loads of distinct keys.
type Loader interface {
	Load(key string) (*rle.Matrix, error)
}

// LoaderFunc adapts a function into a Loader.
type LoaderFunc func(key string) (*rle.Matrix, error)

// Load calls fn(key).
func (fn LoaderFunc) Load(key string) (*rle.Matrix, error) {
	return fn(key)
}
