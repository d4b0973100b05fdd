// Package collision detects chunk key hash collisions. Chunk files are named
// by the 64-bit hash of their key, so two distinct keys mapping to the same
// hash would silently share one file; the tracker turns that into an error at
// save time.
package collision

import (
	"fmt"

	"github.com/genomere/covstats/errs"
)

// Tracker remembers every key-to-hash mapping it has seen. It is not safe for
// concurrent use; callers serialize access.
type Tracker struct {
	keys map[uint64]string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{keys: make(map[uint64]string)}
}

// Track records a key and its hash.
//
// Re-tracking the same key is a no-op: chunks may be rewritten. A different
// key with an already-tracked hash returns errs.ErrKeyCollision naming both
// keys.
func (t *Tracker) Track(key string, hash uint64) error {
	if existing, ok := t.keys[hash]; ok {
		if existing != key {
			return fmt.Errorf("%w: %q and %q map to %016x", errs.ErrKeyCollision, existing, key, hash)
		}

		return nil
	}

	t.keys[hash] = key

	return nil
}

// Count returns the number of distinct keys tracked.
func (t *Tracker) Count() int {
	return len(t.keys)
}

// Reset clears all tracked keys, preserving map capacity.
func (t *Tracker) Reset() {
	for k := range t.keys {
		delete(t.keys, k)
	}
}
